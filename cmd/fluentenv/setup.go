package main

import (
	"fmt"

	"github.com/csnover/fluent-ergonomics/fluent"
	"github.com/csnover/fluent-ergonomics/internal/shell"
)

// runSetup handles the `fluentenv setup` subcommand. It adds the
// activation command to the shell's rc file.
func runSetup(args []string) error {
	showHelp := false
	shellName := ""
	opts := shell.SetupOptions{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			showHelp = true
		case "--dry-run", "-n":
			opts.DryRun = true
		case "--force":
			opts.Force = true
		case "--backup":
			opts.Backup = true
		case "--shell":
			i++
			if i >= len(args) {
				return fmt.Errorf("--shell requires a value: bash, zsh or fish")
			}
			shellName = args[i]
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	if showHelp {
		printSetupHelp()
		return nil
	}

	manager := shell.NewManager()

	var result *shell.SetupResult
	var err error
	if shellName != "" {
		shellType, parseErr := shell.ParseShellName(shellName)
		if parseErr != nil {
			return parseErr
		}
		result, err = manager.SetupIntegration(shellType, opts)
	} else {
		result, err = manager.DetectAndSetup(opts)
	}
	if err != nil {
		return err
	}

	printSetupResult(result, opts)
	return nil
}

func printSetupResult(result *shell.SetupResult, opts shell.SetupOptions) {
	if opts.DryRun {
		fmt.Println(tr("setup-dry-run", nil))
	}

	switch {
	case result.AlreadyPresent && !result.Added:
		fmt.Println(tr("setup-present", fluent.Args{"path": result.RCFile}))
	case result.Added:
		fmt.Println(tr("setup-added", fluent.Args{"path": result.RCFile}))
	case opts.DryRun:
		fmt.Println(tr("setup-would-add", fluent.Args{"path": result.RCFile}))
	}

	if result.BackupPath != "" {
		fmt.Println(tr("setup-backup", fluent.Args{"path": result.BackupPath}))
	}

	if result.Added && !opts.DryRun {
		fmt.Println()
		fmt.Println(tr("setup-restart", nil))
	}
}

func printSetupHelp() {
	fmt.Println("Usage: fluentenv setup [options]")
	fmt.Println()
	fmt.Println(tr("help-setup", nil))
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --shell <name>  Set up a specific shell instead of the detected one")
	fmt.Println("  --dry-run, -n   Show what would be done without making changes")
	fmt.Println("  --force         Add the activation line even if already present")
	fmt.Println("  --backup        Back up the rc file before modifying it")
	fmt.Println("  --help, -h      Show this help")
}
