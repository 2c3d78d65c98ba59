// Package descriptor implements the declarative development-shell
// descriptor: a named environment with an ordered set of build inputs,
// platform-conditional extra inputs, and a shell initialization hook.
//
// A Descriptor is the declarative source; evaluating it for a platform
// identifier produces an immutable ShellSpec value:
//
//	spec := descriptor.Default().Build("x86_64-darwin")
//
// Build is total over all identifier strings: unrecognized platforms
// simply receive no extra inputs. The shell hook is carried as opaque
// shell command text and is only ever executed by the user's shell at
// activation time, never by this package.
//
// Descriptors can also be loaded from sandboxed Lua files. The Lua
// environment exposes a read-only platform table (see the platform
// package) so configurations can express conditionals inline:
//
//	env = {
//	  name = "fluent-ergonomics",
//	  build_inputs = {
//	    "pkg-config",
//	    "crate2nix",
//	    "rust_1_41",
//	    platform.when(platform.identifier == "x86_64-darwin",
//	      "darwin.apple_sdk.frameworks.Security"),
//	  },
//	}
//
// The Lua VM is sandboxed: os, io, require, load, and debug are removed,
// so descriptor files stay declarative and cannot perform side effects.
package descriptor
