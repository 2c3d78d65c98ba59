package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/csnover/fluent-ergonomics/internal/shell"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	// Handle subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("fluentenv %s\n", Version)
			fmt.Println(tr("app-tagline", nil))
			return
		case "eval":
			if err := runEval(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "activate":
			if err := runActivate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "setup":
			if err := runSetup(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "init":
			if err := runInit(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "inputs":
			if err := runInputs(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "platforms":
			if err := runPlatforms(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Default: show help
	fmt.Printf("fluentenv %s\n", Version)
	fmt.Println(tr("app-tagline", nil))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  fluentenv --version             %s\n", tr("help-version", nil))
	fmt.Printf("  fluentenv init [options]        %s\n", tr("help-init", nil))
	fmt.Printf("  fluentenv eval [options]        %s\n", tr("help-eval", nil))
	fmt.Printf("  fluentenv activate <shell>      %s\n", tr("help-activate", nil))
	fmt.Printf("  fluentenv setup [options]       %s\n", tr("help-setup", nil))
	fmt.Printf("  fluentenv inputs [options]      %s\n", tr("help-inputs", nil))
	fmt.Printf("  fluentenv platforms             %s\n", tr("help-platforms", nil))
}

// fluentenvDir returns the configuration directory path.
// First checks the FLUENTENV_DIR environment variable, then falls back
// to ~/.config/fluentenv.
func fluentenvDir() (string, error) {
	if dir := os.Getenv(shell.EnvDir); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "fluentenv"), nil
}

// descriptorPath returns the path of the user's descriptor file inside
// the configuration directory.
func descriptorPath() (string, error) {
	dir, err := fluentenvDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "env.lua"), nil
}
