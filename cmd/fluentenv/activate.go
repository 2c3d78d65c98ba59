package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/csnover/fluent-ergonomics/internal/platform"
	"github.com/csnover/fluent-ergonomics/internal/shell"
)

// runActivate handles the `fluentenv activate <shell>` subcommand. It
// prints shell code for the current platform's spec; the caller evals it
// in the running shell, which is where the optional user hook script is
// checked and sourced.
func runActivate(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.Default()
	debug := os.Getenv(shell.EnvDebug) != ""

	if len(args) < 1 {
		return fmt.Errorf("usage: fluentenv activate <shell>\nSupported shells: bash, zsh, fish")
	}

	shellType, err := shell.ParseShellName(args[0])
	if err != nil {
		return err
	}
	if debug {
		logger.Debug("activating shell", "shell", shellType)
	}

	desc, err := loadDescriptor(ctx, "", debug)
	if err != nil {
		return err
	}

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}

	spec := desc.Build(info.Identifier())
	script, err := shell.RenderActivation(shellType, spec)
	if err != nil {
		return fmt.Errorf("render activation: %w", err)
	}

	// This is what the shell will eval.
	fmt.Print(script)
	return nil
}
