package descriptor

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		d    *Descriptor
	}{
		{"default descriptor", Default()},
		{
			"minimal",
			&Descriptor{Name: "scratch", BuildInputs: []string{"go_1_25"}},
		},
		{
			"multiple platform branches",
			&Descriptor{
				Name:        "multi",
				BuildInputs: []string{"pkg-config"},
				PlatformInputs: map[string][]string{
					"x86_64-darwin":  {"darwin.apple_sdk.frameworks.Security"},
					"aarch64-darwin": {"darwin.apple_sdk.frameworks.Security"},
					"x86_64-linux":   {"gcc", "glibc"},
				},
				ShellHook: "echo hello",
			},
		},
	}

	gen := NewGenerator()
	parser := NewParser(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := gen.Generate(tt.d)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			parsed, err := parser.ParseString(context.Background(), code)
			if err != nil {
				t.Fatalf("generated code does not parse: %v\n%s", err, code)
			}

			if parsed.Name != tt.d.Name {
				t.Errorf("Name = %q, want %q", parsed.Name, tt.d.Name)
			}
			if !reflect.DeepEqual(parsed.BuildInputs, tt.d.BuildInputs) {
				t.Errorf("BuildInputs = %v, want %v", parsed.BuildInputs, tt.d.BuildInputs)
			}
			if len(tt.d.PlatformInputs) > 0 && !reflect.DeepEqual(parsed.PlatformInputs, tt.d.PlatformInputs) {
				t.Errorf("PlatformInputs = %v, want %v", parsed.PlatformInputs, tt.d.PlatformInputs)
			}
			if parsed.ShellHook != tt.d.ShellHook {
				t.Errorf("ShellHook = %q, want %q", parsed.ShellHook, tt.d.ShellHook)
			}
		})
	}
}

func TestGenerateQuotesHook(t *testing.T) {
	d := Default()
	gen := NewGenerator()

	code, err := gen.Generate(d)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// The hook contains double quotes; they must be escaped, and the
	// generated file must still parse back to the identical hook text.
	if !strings.Contains(code, `\"$HOME/.nixpkgs/shellhook.sh\"`) {
		t.Errorf("generated code does not escape the hook quotes:\n%s", code)
	}

	parsed, err := NewParser(nil).ParseString(context.Background(), code)
	if err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
	if parsed.ShellHook != DefaultShellHook {
		t.Errorf("ShellHook = %q, want %q", parsed.ShellHook, DefaultShellHook)
	}
}

func TestGenerateInvalidDescriptor(t *testing.T) {
	gen := NewGenerator()
	if _, err := gen.Generate(&Descriptor{}); err == nil {
		t.Fatal("expected error for descriptor without a name")
	}
}

func TestGenerateDeterministicPlatformOrder(t *testing.T) {
	d := &Descriptor{
		Name:        "multi",
		BuildInputs: []string{"x"},
		PlatformInputs: map[string][]string{
			"x86_64-linux":   {"a"},
			"aarch64-linux":  {"b"},
			"x86_64-darwin":  {"c"},
			"aarch64-darwin": {"d"},
		},
	}

	gen := NewGenerator()
	first, err := gen.Generate(d)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		next, err := gen.Generate(d)
		if err != nil {
			t.Fatal(err)
		}
		// Strip the timestamp line before comparing.
		if stripGeneratedHeader(next) != stripGeneratedHeader(first) {
			t.Fatal("generator output is not deterministic across runs")
		}
	}
}

func stripGeneratedHeader(code string) string {
	lines := strings.Split(code, "\n")
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(line, "-- Generated:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestQuoteLuaString(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		input string
		want  string
	}{
		{"plain", `"plain"`},
		{`with "quotes"`, `"with \"quotes\""`},
		{"line1\nline2", `"line1\nline2"`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
	}

	for _, tt := range tests {
		if got := gen.quoteLuaString(tt.input); got != tt.want {
			t.Errorf("quoteLuaString(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
