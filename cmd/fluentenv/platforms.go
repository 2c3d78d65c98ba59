package main

import (
	"context"
	"fmt"
	"time"

	"github.com/csnover/fluent-ergonomics/internal/platform"
)

// runPlatforms handles the `fluentenv platforms` subcommand. It lists
// the platform identifiers descriptors commonly key on and marks the
// detected one.
func runPlatforms(args []string) error {
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			fmt.Println("Usage: fluentenv platforms")
			fmt.Println()
			fmt.Println(tr("help-platforms", nil))
			return nil
		default:
			return fmt.Errorf("unknown option: %s", arg)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Detection failure is not fatal here, the list is still useful.
	detected := ""
	if info, err := platform.NewDetector().Detect(ctx); err == nil {
		detected = info.Identifier()
	}

	for _, id := range platform.KnownIdentifiers() {
		if id == detected {
			fmt.Printf("%s (%s)\n", id, tr("platforms-detected", nil))
		} else {
			fmt.Println(id)
		}
	}

	// A platform outside the common set still has an identifier.
	if detected != "" {
		known := false
		for _, id := range platform.KnownIdentifiers() {
			if id == detected {
				known = true
				break
			}
		}
		if !known {
			fmt.Printf("%s (%s)\n", detected, tr("platforms-detected", nil))
		}
	}

	return nil
}
