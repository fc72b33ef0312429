package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/hebdo/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine the saved-hours path: env var or default ~/.hebdo/hours.yaml.
	// The --file flag can still override either.
	path := os.Getenv("HEBDO_FILE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".hebdo", "hours.yaml")
	}

	app := &cli.App{}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app, path)
	return rootCmd.Execute()
}
