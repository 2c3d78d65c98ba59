//go:build go1.18

package descriptor

import (
	"context"
	"testing"
)

func FuzzParserParseString(f *testing.F) {
	f.Add(`env = { name = "fluent-ergonomics", build_inputs = { "pkg-config" } }`)
	f.Add(`env = { name = "x", platform_inputs = { ["x86_64-darwin"] = { "y" } } }`)
	f.Add(`env = { name = "x", shell_hook = "echo hi" }`)

	parser := NewParser(nil)

	f.Fuzz(func(t *testing.T, luaCode string) {
		_, _ = parser.ParseString(context.Background(), luaCode)
	})
}

func FuzzGeneratorQuoteLuaString(f *testing.F) {
	f.Add("hello")
	f.Add(`say "hello"`)
	f.Add("line1\nline2")
	f.Add(`C:\\Users\\test`)

	gen := NewGenerator()

	f.Fuzz(func(t *testing.T, input string) {
		quoted := gen.quoteLuaString(input)
		if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
			t.Errorf("quoteLuaString(%q) = %q, invalid format", input, quoted)
		}
	})
}
