// Package shell provides shell integration for fluentenv.
//
// This package handles:
//   - Detecting the user's shell (bash, zsh, fish)
//   - Rendering shell hooks, including the conditional-source snippet
//     that runs the user's optional ~/.nixpkgs/shellhook.sh
//   - Generating activation commands and activation scripts
//   - Safely modifying shell configuration files
//
// # Hook timing
//
// The descriptor's shell hook is command text, not an action: nothing in
// this package executes it. The generated activation script embeds the
// hook so that the existence check for the optional user script happens
// inside the user's shell at activation time. A missing hook file is a
// silent no-op by construction.
//
// # RC file management
//
// The package knows how to locate and safely modify shell configuration
// files:
//   - bash: ~/.bashrc
//   - zsh: ~/.zshrc
//   - fish: ~/.config/fish/config.fish
//
// All modifications are idempotent, optionally backed up, and applied via
// atomic rename.
package shell
