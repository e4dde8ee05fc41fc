package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// PackageName is the default Go package name for generated code.
	PackageName string
	// ModelsMode is the default model emission mode.
	ModelsMode string
	// ModuleVersion is the default version stamped into generated modules.
	ModuleVersion string
	// Strict treats generation warnings as failures by default.
	Strict bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TSPGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		PackageName:   envString("TSPGEN_PACKAGE_NAME", "api"),
		ModelsMode:    envModelsMode("TSPGEN_MODELS_MODE", "dpg"),
		ModuleVersion: envString("TSPGEN_MODULE_VERSION", "0.1.0"),
		Strict:        envBool("TSPGEN_STRICT", false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

// validModelsModes is the set of recognised model emission modes.
// Must stay in sync with model.ModelsMode constants.
var validModelsModes = map[string]bool{
	"dpg": true, "msrest": true, "none": true,
}

func envModelsMode(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !validModelsModes[v] {
		slog.Warn("invalid models mode env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
