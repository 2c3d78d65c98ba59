package shell

import (
	"fmt"
	"strings"

	"github.com/csnover/fluent-ergonomics/internal/descriptor"
)

// SourceIfExists renders the conditional-source snippet for a shell: test
// whether the file at path exists and source it if so, otherwise do
// nothing. The check happens in the shell at activation time; a missing
// file is not an error and produces no output.
func SourceIfExists(shell ShellType, path string) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`if [ -e %q ]; then . %q; fi`, path, path), nil
	case ShellFish:
		return fmt.Sprintf("if test -e %q\n    source %q\nend", path, path), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}

// DefaultHookSnippet renders the conditional-source snippet for the
// standard user hook script under $HOME. For bash and zsh it matches the
// built-in descriptor's shell hook.
func DefaultHookSnippet(shell ShellType) (string, error) {
	return SourceIfExists(shell, "$HOME/"+HookRelPath)
}

// RenderActivation generates the shell code emitted by
// `fluentenv activate <shell>`. It exports the environment markers and
// appends the descriptor's shell hook. The hook body is opaque POSIX
// shell text; for fish it is delegated to sh so the descriptor contract
// holds for every supported shell.
func RenderActivation(shell ShellType, spec descriptor.ShellSpec) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("# fluentenv environment: " + spec.Name + "\n")
	b.WriteString("# build inputs: " + strings.Join(spec.BuildInputs, ", ") + "\n")

	switch shell {
	case ShellBash, ShellZsh:
		fmt.Fprintf(&b, "export %s=1\n", EnvActive)
		fmt.Fprintf(&b, "export %s=%q\n", EnvName, spec.Name)
		if spec.ShellHook != "" {
			b.WriteString(spec.ShellHook)
			b.WriteString("\n")
		}

	case ShellFish:
		fmt.Fprintf(&b, "set -gx %s 1\n", EnvActive)
		fmt.Fprintf(&b, "set -gx %s %q\n", EnvName, spec.Name)
		if spec.ShellHook != "" {
			fmt.Fprintf(&b, "sh -c %s\n", quoteSingle(spec.ShellHook))
		}

	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}

	return b.String(), nil
}

// quoteSingle single-quotes a string for shell consumption, escaping
// embedded single quotes.
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
