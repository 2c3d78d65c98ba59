package shell

import "fmt"

// GenerateActivationCommand generates the activation command users add to
// their rc files. The command evaluates `fluentenv activate` output in
// the current shell.
func GenerateActivationCommand(shell ShellType) (string, error) {
	if err := ValidateShell(shell); err != nil {
		return "", err
	}

	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(fluentenv activate %s)"`, shell), nil
	case ShellFish:
		// Fish pipes to source instead of eval
		return fmt.Sprintf("fluentenv activate %s | source", shell), nil
	default:
		return "", &UnsupportedShellError{Shell: shell.String()}
	}
}
