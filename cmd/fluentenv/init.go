package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/csnover/fluent-ergonomics/fluent"
	"github.com/csnover/fluent-ergonomics/internal/descriptor"
)

// runInit handles the `fluentenv init` subcommand. It writes the
// built-in descriptor to the configuration directory so users have a
// starting point to edit.
func runInit(args []string) error {
	showHelp := false
	force := false

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown option: %s", arg)
		}
	}

	if showHelp {
		printInitHelp()
		return nil
	}

	path, err := descriptorPath()
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s", tr("init-exists", fluent.Args{"path": path}))
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check descriptor file: %w", err)
		}
	}

	content, err := descriptor.NewGenerator().Generate(descriptor.Default())
	if err != nil {
		return fmt.Errorf("generate descriptor: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create configuration directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	fmt.Println(tr("init-written", fluent.Args{"path": path}))
	return nil
}

func printInitHelp() {
	fmt.Println("Usage: fluentenv init [options]")
	fmt.Println()
	fmt.Println(tr("help-init", nil))
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --force     Overwrite an existing descriptor")
	fmt.Println("  --help, -h  Show this help")
}
