package shell

import "fmt"

// Manager orchestrates shell integration setup
type Manager struct{}

// NewManager creates a new shell manager
func NewManager() *Manager {
	return &Manager{}
}

// SetupIntegration sets up shell integration for the given shell
func (m *Manager) SetupIntegration(shell ShellType, opts SetupOptions) (*SetupResult, error) {
	if err := ValidateShell(shell); err != nil {
		return nil, err
	}

	rcPath, err := GetRCFilePath(shell)
	if err != nil {
		return nil, fmt.Errorf("get RC file path: %w", err)
	}

	exists, err := RCFileExists(rcPath)
	if err != nil {
		return nil, fmt.Errorf("check RC file: %w", err)
	}

	if !exists && !opts.DryRun {
		if err := CreateRCFile(rcPath); err != nil {
			return nil, fmt.Errorf("create RC file: %w", err)
		}
	}

	hasActivation, err := HasActivationLine(rcPath)
	if err != nil {
		return nil, fmt.Errorf("check activation line: %w", err)
	}

	activationCmd, err := GenerateActivationCommand(shell)
	if err != nil {
		return nil, fmt.Errorf("generate activation command: %w", err)
	}

	// Already configured and not forcing: nothing to do
	if hasActivation && !opts.Force {
		return &SetupResult{
			Shell:             shell,
			RCFile:            rcPath,
			Added:             false,
			AlreadyPresent:    true,
			ActivationCommand: activationCmd,
		}, nil
	}

	var backupPath string
	if opts.Backup && exists && !opts.DryRun {
		backupPath, err = BackupRCFile(rcPath)
		if err != nil {
			return nil, fmt.Errorf("backup RC file: %w", err)
		}
	}

	if !opts.DryRun {
		if err := AddActivationLine(rcPath, activationCmd); err != nil {
			return nil, fmt.Errorf("add activation line: %w", err)
		}
	}

	return &SetupResult{
		Shell:             shell,
		RCFile:            rcPath,
		Added:             !opts.DryRun,
		AlreadyPresent:    hasActivation,
		BackupPath:        backupPath,
		ActivationCommand: activationCmd,
	}, nil
}

// DetectAndSetup detects the user's shell and sets up integration
func (m *Manager) DetectAndSetup(opts SetupOptions) (*SetupResult, error) {
	detection, err := DetectShell()
	if err != nil {
		return nil, fmt.Errorf("detect shell: %w", err)
	}

	if !detection.Shell.IsValid() {
		return nil, &UnsupportedShellError{Shell: detection.ShellPath}
	}

	return m.SetupIntegration(detection.Shell, opts)
}
