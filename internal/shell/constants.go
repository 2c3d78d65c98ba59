package shell

// Environment variable names used by fluentenv shell integration
const (
	// EnvActive indicates a fluentenv shell is active
	EnvActive = "FLUENTENV_ACTIVE"

	// EnvName carries the active shell name
	EnvName = "FLUENTENV_NAME"

	// EnvDir overrides the fluentenv configuration directory
	EnvDir = "FLUENTENV_DIR"

	// EnvDebug enables debug logging when set
	EnvDebug = "FLUENTENV_DEBUG"
)

// Activation and backup markers
const (
	// ActivationMarker is the string that must appear in activation commands
	ActivationMarker = "fluentenv activate"

	// BackupSuffix is the suffix for rc file backups
	BackupSuffix = ".fluentenv-backup"
)

// HookRelPath is the user-local hook script path relative to $HOME.
// The script is optional; the generated activation code checks for it at
// shell start and sources it only when present.
const HookRelPath = ".nixpkgs/shellhook.sh"
