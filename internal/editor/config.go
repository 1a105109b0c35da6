// Package editor provides the editor session: state, control loop and rendering.
package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/hecto/internal/terminal"
)

// Environment variables read by LoadConfig.
const (
	EnvBackend  = "HECTO_BACKEND"
	EnvLog      = "HECTO_LOG"
	EnvLogLevel = "HECTO_LOG_LEVEL"
)

// Config is the process environment the editor honours.
type Config struct {
	// Backend names the terminal backend ("ansi" or "tcell").
	Backend string
	// LogPath is the file debug logs are appended to. Empty disables logging.
	LogPath string
	// LogLevel is the minimum level written to LogPath.
	LogLevel LogLevel
}

// LoadConfig reads the configuration from getenv, typically os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Backend: strings.ToLower(strings.TrimSpace(getenv(EnvBackend))),
		LogPath: strings.TrimSpace(getenv(EnvLog)),
	}
	if cfg.Backend == "" {
		cfg.Backend = terminal.BackendANSI
	}
	switch cfg.Backend {
	case terminal.BackendANSI, terminal.BackendTcell:
	default:
		return Config{}, fmt.Errorf("%s: %w: %q", EnvBackend, terminal.ErrUnknownBackend, cfg.Backend)
	}

	raw := getenv(EnvLogLevel)
	level, ok := ParseLogLevel(raw)
	if !ok {
		return Config{}, fmt.Errorf("%s: invalid log level %q (must be debug, info, warn, or error)", EnvLogLevel, raw)
	}
	cfg.LogLevel = level
	return cfg, nil
}
