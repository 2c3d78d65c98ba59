package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by EncodeSpec.
const (
	FormatLua  = "lua"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EncodeSpec serializes an evaluated ShellSpec in the requested format.
// The lua form is a plain value table suitable for consumption by other
// tooling, not a descriptor (it carries no conditionals: evaluation has
// already happened).
func EncodeSpec(spec ShellSpec, format string) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode spec as json: %w", err)
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(spec)
		if err != nil {
			return "", fmt.Errorf("encode spec as yaml: %w", err)
		}
		return string(data), nil

	case FormatLua:
		return encodeSpecLua(spec), nil

	default:
		return "", fmt.Errorf("unknown output format: %q (supported: lua, json, yaml)", format)
	}
}

func encodeSpecLua(spec ShellSpec) string {
	g := NewGenerator()
	var buf bytes.Buffer

	buf.WriteString("shell = {\n")
	buf.WriteString(g.indent)
	buf.WriteString("name = ")
	buf.WriteString(g.quoteLuaString(spec.Name))
	buf.WriteString(",\n")

	g.writeInputs(&buf, "build_inputs", spec.BuildInputs, 1)

	if spec.ShellHook != "" {
		buf.WriteString(g.indent)
		buf.WriteString("shell_hook = ")
		buf.WriteString(g.quoteLuaString(spec.ShellHook))
		buf.WriteString(",\n")
	}
	buf.WriteString("}\n")

	return buf.String()
}
