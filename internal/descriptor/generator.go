package descriptor

import (
	"bytes"
	"sort"
	"strings"
	"time"
)

// Generator generates Lua descriptor code from Go values.
type Generator struct {
	indent string
}

// NewGenerator creates a new Lua descriptor generator.
func NewGenerator() *Generator {
	return &Generator{
		indent: "  ", // Two spaces
	}
}

// Generate generates Lua code from a Descriptor. The output is formatted,
// human-readable, and parses back to an equivalent descriptor.
func (g *Generator) Generate(d *Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer

	buf.WriteString("-- Development shell descriptor\n")
	buf.WriteString("-- Generated: ")
	buf.WriteString(time.Now().UTC().Format(time.RFC3339))
	buf.WriteString("\n\n")

	buf.WriteString(luaGlobalEnv + " = {\n")

	buf.WriteString(g.indent)
	buf.WriteString(luaFieldName + " = ")
	buf.WriteString(g.quoteLuaString(d.Name))
	buf.WriteString(",\n\n")

	g.writeInputs(&buf, luaFieldBuildInputs, d.BuildInputs, 1)

	if len(d.PlatformInputs) > 0 {
		buf.WriteString("\n")
		g.writePlatformInputs(&buf, d.PlatformInputs)
	}

	if d.ShellHook != "" {
		buf.WriteString("\n")
		buf.WriteString(g.indent)
		buf.WriteString(luaFieldShellHook + " = ")
		buf.WriteString(g.quoteLuaString(d.ShellHook))
		buf.WriteString(",\n")
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

// writeInputs writes an input array at the given indentation depth.
func (g *Generator) writeInputs(buf *bytes.Buffer, field string, inputs []string, depth int) {
	pad := strings.Repeat(g.indent, depth)

	buf.WriteString(pad)
	buf.WriteString(field + " = {\n")
	for _, input := range inputs {
		buf.WriteString(pad)
		buf.WriteString(g.indent)
		buf.WriteString(g.quoteLuaString(input))
		buf.WriteString(",\n")
	}
	buf.WriteString(pad)
	buf.WriteString("},\n")
}

// writePlatformInputs writes the platform extras map with sorted keys so
// the output is deterministic.
func (g *Generator) writePlatformInputs(buf *bytes.Buffer, platformInputs map[string][]string) {
	ids := make([]string, 0, len(platformInputs))
	for id := range platformInputs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	buf.WriteString(g.indent)
	buf.WriteString(luaFieldPlatformInputs + " = {\n")
	for _, id := range ids {
		buf.WriteString(g.indent)
		buf.WriteString(g.indent)
		buf.WriteString("[")
		buf.WriteString(g.quoteLuaString(id))
		buf.WriteString("] = {\n")
		for _, input := range platformInputs[id] {
			buf.WriteString(strings.Repeat(g.indent, 3))
			buf.WriteString(g.quoteLuaString(input))
			buf.WriteString(",\n")
		}
		buf.WriteString(g.indent)
		buf.WriteString(g.indent)
		buf.WriteString("},\n")
	}
	buf.WriteString(g.indent)
	buf.WriteString("},\n")
}

// quoteLuaString quotes a string for Lua, handling special characters.
func (g *Generator) quoteLuaString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\") // Escape backslashes first
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return "\"" + s + "\""
}
