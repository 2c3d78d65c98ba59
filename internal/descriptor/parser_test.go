package descriptor

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/csnover/fluent-ergonomics/internal/platform"
)

// stubDetector returns a fixed platform without touching the host.
type stubDetector struct {
	info platform.Info
}

func (s *stubDetector) Detect(ctx context.Context) (*platform.Info, error) {
	info := s.info
	return &info, nil
}

func intelDarwin() *stubDetector {
	return &stubDetector{info: platform.Info{OS: "darwin", Arch: "amd64", ArchRaw: "amd64"}}
}

func armLinux() *stubDetector {
	return &stubDetector{info: platform.Info{OS: "linux", Arch: "arm64", ArchRaw: "arm64"}}
}

const fullDescriptor = `
env = {
  name = "fluent-ergonomics",

  build_inputs = {
    "pkg-config",
    "crate2nix",
    "rust_1_41",
  },

  platform_inputs = {
    ["x86_64-darwin"] = {
      "darwin.apple_sdk.frameworks.Security",
    },
  },

  shell_hook = "if [ -e \"$HOME/.nixpkgs/shellhook.sh\" ]; then . \"$HOME/.nixpkgs/shellhook.sh\"; fi",
}
`

func TestParseStringFullDescriptor(t *testing.T) {
	parser := NewParser(intelDarwin())
	d, err := parser.ParseString(context.Background(), fullDescriptor)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if d.Name != "fluent-ergonomics" {
		t.Errorf("Name = %q", d.Name)
	}
	wantInputs := []string{"pkg-config", "crate2nix", "rust_1_41"}
	if !reflect.DeepEqual(d.BuildInputs, wantInputs) {
		t.Errorf("BuildInputs = %v, want %v", d.BuildInputs, wantInputs)
	}
	wantExtras := map[string][]string{
		"x86_64-darwin": {"darwin.apple_sdk.frameworks.Security"},
	}
	if !reflect.DeepEqual(d.PlatformInputs, wantExtras) {
		t.Errorf("PlatformInputs = %v, want %v", d.PlatformInputs, wantExtras)
	}
	if d.ShellHook == "" {
		t.Error("ShellHook is empty")
	}

	// The parsed descriptor satisfies the evaluation contract.
	if got := len(d.Build("x86_64-darwin").BuildInputs); got != 4 {
		t.Errorf("Build(x86_64-darwin) has %d inputs, want 4", got)
	}
	if got := len(d.Build("aarch64-linux").BuildInputs); got != 3 {
		t.Errorf("Build(aarch64-linux) has %d inputs, want 3", got)
	}
}

func TestParseStringInlineConditional(t *testing.T) {
	code := `
env = {
  name = "fluent-ergonomics",
  build_inputs = {
    "pkg-config",
    "crate2nix",
    "rust_1_41",
    platform.when(platform.identifier == "x86_64-darwin", "darwin.apple_sdk.frameworks.Security"),
  },
}
`

	tests := []struct {
		name       string
		detector   platform.Detector
		wantInputs int
	}{
		{"intel darwin appends", intelDarwin(), 4},
		{"arm linux filters nil", armLinux(), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(tt.detector)
			d, err := parser.ParseString(context.Background(), code)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			if len(d.BuildInputs) != tt.wantInputs {
				t.Errorf("len(BuildInputs) = %d, want %d: %v", len(d.BuildInputs), tt.wantInputs, d.BuildInputs)
			}
		})
	}
}

func TestParseStringAndOrConditional(t *testing.T) {
	code := `
env = {
  name = "test",
  build_inputs = {
    "go_1_25",
    platform.is_linux and "gcc" or nil,
  },
}
`
	parser := NewParser(armLinux())
	d, err := parser.ParseString(context.Background(), code)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	want := []string{"go_1_25", "gcc"}
	if !reflect.DeepEqual(d.BuildInputs, want) {
		t.Errorf("BuildInputs = %v, want %v", d.BuildInputs, want)
	}
}

func TestParseStringErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"syntax error", `env = {`},
		{"missing env table", `shell = { name = "x" }`},
		{"env not a table", `env = "string"`},
		{"missing name", `env = { build_inputs = { "x" } }`},
		{"invalid input string", `env = { name = "x", build_inputs = { "bad input!" } }`},
		{"platform_inputs value not a table", `env = { name = "x", platform_inputs = { ["x86_64-linux"] = "gcc" } }`},
		{"platform_inputs numeric key", `env = { name = "x", platform_inputs = { { "gcc" } } }`},
		{"platform global without detector errors in lua", `env = { name = "x", build_inputs = { platform.when(true, "y") } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(nil)
			_, err := parser.ParseString(context.Background(), tt.code)
			if err == nil {
				t.Fatal("expected error")
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestParseStringWithoutDetector(t *testing.T) {
	parser := NewParser(nil)
	d, err := parser.ParseString(context.Background(), `env = { name = "plain", build_inputs = { "go_1_25" } }`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if d.Name != "plain" {
		t.Errorf("Name = %q", d.Name)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.lua")
	if err := os.WriteFile(path, []byte(fullDescriptor), 0o644); err != nil {
		t.Fatal(err)
	}

	parser := NewParser(intelDarwin())
	d, err := parser.ParseFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if d.Name != "fluent-ergonomics" {
		t.Errorf("Name = %q", d.Name)
	}
}

func TestParseFileMissing(t *testing.T) {
	parser := NewParser(nil)
	_, err := parser.ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.lua"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatError(t *testing.T) {
	err := &ParseError{
		Message: "Lua syntax error",
		Detail:  "line 3: unexpected symbol\nstack traceback:\n  [C]: ...",
	}

	concise := FormatError(err, false)
	if want := "Lua syntax error: line 3: unexpected symbol"; concise != want {
		t.Errorf("FormatError(verbose=false) = %q, want %q", concise, want)
	}

	verbose := FormatError(err, true)
	if verbose == concise {
		t.Error("verbose output should include the traceback")
	}
}

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	debugs []string
	warns  []string
}

func (r *recordingLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.debugs = append(r.debugs, msg)
}

func (r *recordingLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.warns = append(r.warns, msg)
}

func TestSetLogger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.lua")
	if err := os.WriteFile(path, []byte(fullDescriptor), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	parser := NewParser(intelDarwin())
	rec := &recordingLogger{}
	parser.SetLogger(rec)

	if _, err := parser.ParseFile(context.Background(), path); err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(rec.debugs) == 0 {
		t.Error("replacement logger received no debug messages")
	}

	// nil restores the no-op default without panicking.
	parser.SetLogger(nil)
	if _, err := parser.ParseString(context.Background(), fullDescriptor); err != nil {
		t.Fatalf("ParseString() after SetLogger(nil) error = %v", err)
	}
}
