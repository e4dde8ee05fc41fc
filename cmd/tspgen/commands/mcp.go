package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/tspgen/internal/cliutil"
	"github.com/erraggy/tspgen/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: tspgen mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio, exposing the\n")
		cliutil.Writef(fs.Output(), "generate and inspect tools to MCP clients.\n\n")
		cliutil.Writef(fs.Output(), "Configuration is read from TSPGEN_* environment variables; see the\n")
		cliutil.Writef(fs.Output(), "server instructions reported to the client for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
