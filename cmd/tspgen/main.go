package main

import (
	"fmt"
	"os"

	"github.com/erraggy/tspgen"
	"github.com/erraggy/tspgen/cmd/tspgen/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("tspgen v%s\n", tspgen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tspgen - TypeSpec SDK Generator

Usage:
  tspgen <command> [options]

Commands:
  generate    Generate a Go SDK from a TypeSpec code-model document
  inspect     Inspect a code-model document and print its structure
  mcp         Run an MCP server exposing generate and inspect over stdio
  version     Show version information
  help        Show this help message

Examples:
  tspgen generate -o ./sdk code-model.yaml
  tspgen generate --module-name=github.com/contoso/widgets -o ./sdk code-model.yaml
  tspgen inspect --format json code-model.yaml
  cat code-model.yaml | tspgen generate -o ./sdk -

Run 'tspgen <command> --help' for more information on a command.`)
}
