package descriptor

import (
	"context"
	"strings"
	"testing"
)

func TestSandboxBlocksDangerousGlobals(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"os.execute", `env = { name = tostring(os.execute("id")) }`},
		{"os.getenv", `env = { name = os.getenv("HOME") }`},
		{"io.open", `env = { name = tostring(io.open("/etc/passwd")) }`},
		{"require", `local m = require("io") env = { name = "x" }`},
		{"dofile", `dofile("/etc/passwd") env = { name = "x" }`},
		{"loadfile", `loadfile("/etc/passwd") env = { name = "x" }`},
		{"load", `load("return 1")() env = { name = "x" }`},
		{"loadstring", `loadstring("return 1")() env = { name = "x" }`},
		{"debug library", `debug.sethook() env = { name = "x" }`},
	}

	parser := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseString(context.Background(), tt.code)
			if err == nil {
				t.Fatalf("expected sandbox to reject %s", tt.name)
			}
		})
	}
}

func TestSandboxKeepsSafeLibraries(t *testing.T) {
	code := `
local parts = {}
for word in string.gmatch("pkg-config crate2nix", "%S+") do
  table.insert(parts, word)
end

env = {
  name = "safe-" .. tostring(math.floor(1.9)),
  build_inputs = parts,
}
`
	parser := NewParser(nil)
	d, err := parser.ParseString(context.Background(), code)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if d.Name != "safe-1" {
		t.Errorf("Name = %q, want safe-1", d.Name)
	}
	if len(d.BuildInputs) != 2 {
		t.Errorf("BuildInputs = %v, want two entries", d.BuildInputs)
	}
}

func TestSandboxErrorMentionsNil(t *testing.T) {
	// Removed globals read as nil; calling through them is a runtime
	// error surfaced as a ParseError.
	parser := NewParser(nil)
	_, err := parser.ParseString(context.Background(), `os.exit(1)`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "nil") {
		t.Errorf("error = %v, want a nil-index error", err)
	}
}
