package descriptor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/csnover/fluent-ergonomics/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser parses Lua descriptor files with platform detection.
type Parser struct {
	detector platform.Detector
	logger   Logger
}

// NewParser creates a new descriptor parser. The detector may be nil, in
// which case no platform table is injected and descriptor files must not
// reference the platform global.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{
		detector: detector,
		logger:   defaultLogger(),
	}
}

// SetLogger replaces the parser's logger. A nil logger restores the
// default no-op logger.
func (p *Parser) SetLogger(logger Logger) {
	if logger == nil {
		logger = defaultLogger()
	}
	p.logger = logger
}

// ParseFile parses a Lua descriptor from a file on disk.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Descriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor file: %w", err)
	}

	p.logger.Debug("parsing descriptor file", "path", path, "bytes", len(content))
	return p.ParseString(ctx, string(content))
}

// ParseString parses a Lua descriptor from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Descriptor, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		p.logger.Debug("injecting platform table", "identifier", info.Identifier())
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractDescriptor(L)
}

// ParseError represents a descriptor parsing error with a friendly
// message and the raw Lua detail.
type ParseError struct {
	Message string
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractDescriptor extracts the descriptor from a Lua state. It expects
// a global "env" table with the descriptor structure.
func extractDescriptor(L *lua.LState) (*Descriptor, error) {
	envVal := L.GetGlobal(luaGlobalEnv)
	if envVal.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'env' table",
			Detail:  fmt.Sprintf("expected table, got %s", envVal.Type()),
		}
	}

	d := &Descriptor{}
	table := envVal.(*lua.LTable)

	if nameVal := table.RawGetString(luaFieldName); nameVal.Type() == lua.LTString {
		d.Name = nameVal.String()
	}

	if inputsVal := table.RawGetString(luaFieldBuildInputs); inputsVal.Type() == lua.LTTable {
		d.BuildInputs = extractInputs(inputsVal.(*lua.LTable))
	}

	if platVal := table.RawGetString(luaFieldPlatformInputs); platVal.Type() == lua.LTTable {
		platformInputs, err := extractPlatformInputs(platVal.(*lua.LTable))
		if err != nil {
			return nil, err
		}
		d.PlatformInputs = platformInputs
	}

	if hookVal := table.RawGetString(luaFieldShellHook); hookVal.Type() == lua.LTString {
		d.ShellHook = hookVal.String()
	}

	if err := d.Validate(); err != nil {
		return nil, &ParseError{
			Message: "descriptor validation failed",
			Detail:  err.Error(),
		}
	}

	return d, nil
}

// extractInputs extracts a build input array from a Lua table. Nil values
// from platform conditionals (platform.when(...) or `cond and "x" or nil`)
// are filtered out.
func extractInputs(table *lua.LTable) []string {
	var inputs []string

	table.ForEach(func(key, value lua.LValue) {
		if value.Type() != lua.LTString {
			return
		}
		inputs = append(inputs, value.String())
	})

	return inputs
}

// extractPlatformInputs extracts the platform extras map. Keys are
// platform identifier strings, values are input arrays.
func extractPlatformInputs(table *lua.LTable) (map[string][]string, error) {
	result := make(map[string][]string)
	var extractErr error

	table.ForEach(func(key, value lua.LValue) {
		if extractErr != nil {
			return
		}
		if key.Type() != lua.LTString {
			extractErr = &ParseError{
				Message: "invalid platform_inputs key",
				Detail:  fmt.Sprintf("expected string identifier, got %s", key.Type()),
			}
			return
		}
		if value.Type() != lua.LTTable {
			extractErr = &ParseError{
				Message: fmt.Sprintf("invalid platform_inputs value for %q", key.String()),
				Detail:  fmt.Sprintf("expected table of inputs, got %s", value.Type()),
			}
			return
		}
		result[key.String()] = extractInputs(value.(*lua.LTable))
	})

	if extractErr != nil {
		return nil, extractErr
	}
	return result, nil
}

// FormatError formats a parse error for user display. In verbose mode the
// raw Lua error is shown; otherwise the stack traceback is trimmed.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
