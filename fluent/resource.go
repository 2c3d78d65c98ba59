package fluent

import (
	"fmt"
	"regexp"
	"strings"
)

// messageIDPattern matches valid message identifiers.
var messageIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// parseResource parses a message catalog into identifier/pattern pairs.
//
// The format is line oriented. A message is an identifier, an equals
// sign and a pattern. Lines starting with # are comments, blank lines
// are ignored, and indented lines continue the preceding message's
// pattern. Patterns may contain placeables: {$name} interpolates a call
// argument and {other-id} embeds another message.
func parseResource(text string) (map[string]string, error) {
	messages := make(map[string]string)

	var currentID string
	for i, line := range strings.Split(text, "\n") {
		lineno := i + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			currentID = ""
			continue
		}

		// Indented lines continue the current pattern.
		if line != trimmed && (line[0] == ' ' || line[0] == '\t') {
			if currentID == "" {
				return nil, &ParseError{Line: lineno, Message: "continuation line without a message"}
			}
			messages[currentID] += "\n" + trimmed
			continue
		}

		id, pattern, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{Line: lineno, Message: "expected `identifier = pattern`"}
		}

		id = strings.TrimSpace(id)
		if !messageIDPattern.MatchString(id) {
			return nil, &ParseError{Line: lineno, Message: fmt.Sprintf("invalid message identifier %q", id)}
		}

		messages[id] = strings.TrimSpace(pattern)
		currentID = id
	}

	return messages, nil
}
