package descriptor

import (
	"fmt"
	"regexp"
)

// ShellSpec is the evaluated form of a descriptor: the value handed to
// whatever materializes the environment. It is created once per
// evaluation and never mutated afterwards.
type ShellSpec struct {
	// Name of the development shell.
	Name string `json:"name" yaml:"name"`

	// BuildInputs lists dependency identifiers in declaration order.
	// The set is what matters semantically, but order is preserved
	// because it can affect PATH precedence in the consumer.
	BuildInputs []string `json:"build_inputs" yaml:"build_inputs"`

	// ShellHook is opaque shell command text executed by the user's
	// shell when the environment is activated. An empty hook is valid.
	ShellHook string `json:"shell_hook,omitempty" yaml:"shell_hook,omitempty"`
}

// Validate checks a ShellSpec against the schema invariants.
func (s *ShellSpec) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "name cannot be empty"}
	}

	if len(s.BuildInputs) > MaxBuildInputCount {
		return &ValidationError{
			Field:   "build_inputs",
			Message: fmt.Sprintf("too many build inputs (%d), maximum is %d", len(s.BuildInputs), MaxBuildInputCount),
		}
	}

	for i, input := range s.BuildInputs {
		if err := validateInputString(input); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("build_inputs[%d]", i),
				Message: err.Error(),
			}
		}
	}

	if len(s.ShellHook) > MaxShellHookLength {
		return &ValidationError{
			Field:   "shell_hook",
			Message: fmt.Sprintf("shell hook too long (%d bytes, max %d)", len(s.ShellHook), MaxShellHookLength),
		}
	}

	return nil
}

// ValidationError represents a descriptor validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "descriptor validation failed for " + e.Field + ": " + e.Message
	}
	return "descriptor validation failed: " + e.Message
}

// inputPattern matches valid build input identifiers. Identifiers are
// opaque to this tool but follow attribute-path conventions, e.g.
// "pkg-config", "rust_1_41", "darwin.apple_sdk.frameworks.Security".
var inputPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._/-]*$`)

// validateInputString validates a single build input identifier.
func validateInputString(input string) error {
	if input == "" {
		return fmt.Errorf("build input cannot be empty")
	}

	if len(input) > MaxInputLength {
		return fmt.Errorf("build input too long (%d chars, max %d)", len(input), MaxInputLength)
	}

	if !inputPattern.MatchString(input) {
		return fmt.Errorf("invalid build input: %q (expected an attribute-path identifier)", input)
	}

	return nil
}
