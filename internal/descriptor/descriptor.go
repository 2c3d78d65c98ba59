package descriptor

// DefaultName is the name of the built-in development shell.
const DefaultName = "fluent-ergonomics"

// DefaultShellHook sources the user's optional local hook script when the
// shell activates. The existence check runs in the shell, at activation
// time; a missing file is a silent no-op.
const DefaultShellHook = `if [ -e "$HOME/.nixpkgs/shellhook.sh" ]; then . "$HOME/.nixpkgs/shellhook.sh"; fi`

// Descriptor is the declarative source of a development shell. Evaluating
// it for a platform identifier produces a ShellSpec.
type Descriptor struct {
	// Name of the shell. Required.
	Name string

	// BuildInputs are the unconditional dependency identifiers, in
	// declaration order.
	BuildInputs []string

	// PlatformInputs maps platform identifiers (e.g. "x86_64-darwin")
	// to extra dependency identifiers appended only when the evaluation
	// platform matches the key exactly. Identifiers that match no key
	// contribute nothing; arbitrary strings are accepted.
	PlatformInputs map[string][]string

	// ShellHook is opaque shell command text deferred to activation.
	ShellHook string
}

// Default returns the built-in fluent-ergonomics descriptor: a
// package-config lookup tool, a Rust-packaging conversion tool, a pinned
// Rust 1.41 toolchain, and the platform security framework on Intel
// macOS. The identifiers are opaque configuration values resolved by
// external tooling.
func Default() *Descriptor {
	return &Descriptor{
		Name: DefaultName,
		BuildInputs: []string{
			"pkg-config",
			"crate2nix",
			"rust_1_41",
		},
		PlatformInputs: map[string][]string{
			"x86_64-darwin": {"darwin.apple_sdk.frameworks.Security"},
		},
		ShellHook: DefaultShellHook,
	}
}

// Build evaluates the descriptor for the given platform identifier. It is
// total over all strings, deterministic, and free of side effects: the
// fixed inputs are concatenated with the extras registered for exactly
// that identifier, which is an empty list for anything unrecognized.
//
// The returned ShellSpec owns its slice; later calls and mutations of the
// descriptor do not alias it.
func (d *Descriptor) Build(platformID string) ShellSpec {
	extras := d.PlatformInputs[platformID]

	inputs := make([]string, 0, len(d.BuildInputs)+len(extras))
	inputs = append(inputs, d.BuildInputs...)
	inputs = append(inputs, extras...)

	return ShellSpec{
		Name:        d.Name,
		BuildInputs: inputs,
		ShellHook:   d.ShellHook,
	}
}

// Validate checks the descriptor itself: every platform branch must
// produce a valid ShellSpec.
func (d *Descriptor) Validate() error {
	base := d.Build("")
	if err := base.Validate(); err != nil {
		return err
	}

	for id := range d.PlatformInputs {
		if id == "" {
			return &ValidationError{Field: "platform_inputs", Message: "platform identifier cannot be empty"}
		}
		spec := d.Build(id)
		if err := spec.Validate(); err != nil {
			return err
		}
	}

	return nil
}
