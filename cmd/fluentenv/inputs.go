package main

import (
	"context"
	"fmt"
	"time"

	"github.com/csnover/fluent-ergonomics/internal/platform"
	"github.com/csnover/fluent-ergonomics/internal/toolchain"
)

// runInputs handles the `fluentenv inputs` subcommand. It evaluates the
// descriptor and reports, per build input, whether fluentenv downloads a
// pinned artifact for it or expects the surrounding environment to
// provide it.
func runInputs(args []string) error {
	showHelp := false
	platformID := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			showHelp = true
		case "--platform":
			i++
			if i >= len(args) {
				return fmt.Errorf("--platform requires an identifier (e.g. x86_64-linux)")
			}
			platformID = args[i]
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	if showHelp {
		fmt.Println("Usage: fluentenv inputs [options]")
		fmt.Println()
		fmt.Println(tr("help-inputs", nil))
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  --platform <id>   Resolve for a platform identifier instead of")
		fmt.Println("                    the detected one")
		fmt.Println("  --help, -h        Show this help")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	desc, err := loadDescriptor(ctx, "", false)
	if err != nil {
		return err
	}

	var info *platform.Info
	if platformID == "" {
		info, err = platform.NewDetector().Detect(ctx)
		if err != nil {
			return fmt.Errorf("detect platform: %w", err)
		}
		platformID = info.Identifier()
	} else {
		arch, osName, err := platform.ParseIdentifier(platformID)
		if err != nil {
			return err
		}
		info = &platform.Info{OS: osName, Arch: arch}
	}

	spec := desc.Build(platformID)
	resolver := toolchain.NewResolver(info)

	for _, input := range spec.BuildInputs {
		artifact, managed, err := resolver.Resolve(input)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", input, err)
		}
		if managed {
			fmt.Printf("%-40s %s\n", input, artifact.URL)
		} else {
			fmt.Printf("%-40s %s\n", input, tr("inputs-external", nil))
		}
	}

	return nil
}
