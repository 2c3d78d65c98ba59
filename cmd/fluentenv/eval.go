package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/csnover/fluent-ergonomics/internal/descriptor"
	"github.com/csnover/fluent-ergonomics/internal/platform"
	"github.com/csnover/fluent-ergonomics/internal/shell"
)

// slogLogger adapts slog to the descriptor package's Logger interface so
// parser internals surface under FLUENTENV_DEBUG.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.l.Debug(msg, keysAndValues...)
}

func (s slogLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.l.Warn(msg, keysAndValues...)
}

var _ descriptor.Logger = slogLogger{}

// runEval handles the `fluentenv eval` subcommand. It evaluates the
// descriptor for one platform and prints the resulting shell spec.
func runEval(args []string) error {
	showHelp := false
	verbose := false
	platformID := ""
	format := descriptor.FormatLua
	configPath := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			showHelp = true
		case "--verbose", "-v":
			verbose = true
		case "--platform":
			i++
			if i >= len(args) {
				return fmt.Errorf("--platform requires an identifier (e.g. x86_64-linux)")
			}
			platformID = args[i]
		case "--format":
			i++
			if i >= len(args) {
				return fmt.Errorf("--format requires a value: lua, json or yaml")
			}
			format = args[i]
		case "--config":
			i++
			if i >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			configPath = args[i]
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	if showHelp {
		printEvalHelp()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.Default()
	debug := os.Getenv(shell.EnvDebug) != ""

	desc, err := loadDescriptor(ctx, configPath, debug)
	if err != nil {
		if verbose {
			return fmt.Errorf("%s", descriptor.FormatError(err, true))
		}
		return fmt.Errorf("%s", descriptor.FormatError(err, false))
	}

	// Detect the platform when no identifier was given on the command
	// line.
	if platformID == "" {
		info, err := platform.NewDetector().Detect(ctx)
		if err != nil {
			return fmt.Errorf("detect platform: %w", err)
		}
		platformID = info.Identifier()
	}
	if debug {
		logger.Debug("evaluating descriptor", "platform", platformID, "format", format)
	}

	spec := desc.Build(platformID)
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid shell spec: %w", err)
	}

	out, err := descriptor.EncodeSpec(spec, format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// loadDescriptor resolves the descriptor to evaluate. An explicit
// --config path wins; otherwise the descriptor file in the
// configuration directory is used when present, and the built-in
// default when not.
func loadDescriptor(ctx context.Context, configPath string, debug bool) (*descriptor.Descriptor, error) {
	if configPath == "" {
		path, err := descriptorPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				if debug {
					slog.Default().Debug("no descriptor file, using built-in default", "path", path)
				}
				return descriptor.Default(), nil
			}
			return nil, fmt.Errorf("check descriptor file: %w", err)
		}
		configPath = path
	}

	parser := descriptor.NewParser(platform.NewDetector())
	if debug {
		parser.SetLogger(slogLogger{slog.Default()})
	}
	desc, err := parser.ParseFile(ctx, configPath)
	if err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", configPath, err)
	}
	return desc, nil
}

func printEvalHelp() {
	fmt.Println("Usage: fluentenv eval [options]")
	fmt.Println()
	fmt.Println(tr("help-eval", nil))
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --platform <id>   Evaluate for a platform identifier instead of")
	fmt.Println("                    the detected one (e.g. x86_64-darwin)")
	fmt.Println("  --format <fmt>    Output format: lua (default), json, yaml")
	fmt.Println("  --config <path>   Use a specific descriptor file")
	fmt.Println("  --verbose, -v     Show full error details")
	fmt.Println("  --help, -h        Show this help")
}
