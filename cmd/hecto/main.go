// Package main is the entry point for the hecto editor.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dshills/hecto/internal/editor"
	"github.com/dshills/hecto/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	name    = editor.DefaultName
	version = editor.DefaultVersion
)

func main() {
	os.Exit(run())
}

func run() int {
	if !isTTY(os.Stdin.Fd()) || !isTTY(os.Stdout.Fd()) {
		fmt.Fprintf(os.Stderr, "Error: %s needs an interactive terminal: %v\n", name, terminal.ErrNotTerminal)
		return 1
	}

	cfg, err := editor.LoadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	backend, err := terminal.Open(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	logger.WithComponent("main").Info("starting %s %s on %s backend", name, version, cfg.Backend)

	ed := editor.New(terminal.New(backend), editor.Options{
		Name:    name,
		Version: version,
		Logger:  logger,
	})

	// Run restores the terminal before returning, so stderr is readable here.
	if err := ed.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// openLogger returns a logger appending to cfg.LogPath, or the null
// logger when no path is set.
func openLogger(cfg editor.Config) (*editor.Logger, func(), error) {
	if cfg.LogPath == "" {
		return editor.NullLogger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	logCfg := editor.DefaultLoggerConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Output = f
	return editor.NewLogger(logCfg), func() { _ = f.Close() }, nil
}
