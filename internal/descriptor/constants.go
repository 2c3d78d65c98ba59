package descriptor

// Lua schema field names and globals
const (
	luaGlobalEnv           = "env"
	luaFieldName           = "name"
	luaFieldBuildInputs    = "build_inputs"
	luaFieldPlatformInputs = "platform_inputs"
	luaFieldShellHook      = "shell_hook"
)

// Validation ceilings
const (
	// MaxBuildInputCount bounds the number of build inputs in a single
	// descriptor, including platform extras.
	MaxBuildInputCount = 512

	// MaxInputLength bounds the length of a single input identifier.
	MaxInputLength = 256

	// MaxShellHookLength bounds the shell hook command text.
	MaxShellHookLength = 64 * 1024
)
