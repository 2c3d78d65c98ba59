package fluent

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Unicode first-strong-isolate and pop-directional-isolate marks.
// Interpolated values are wrapped in these during formatting so
// bidirectional text renders correctly, then stripped from the final
// string returned to callers.
const (
	isolateStart = "⁨"
	isolateEnd   = "⁩"
)

// maxReferenceDepth bounds nested message references so that message
// cycles terminate instead of recursing forever.
const maxReferenceDepth = 8

// Args carries values interpolated into a message pattern. Keys match
// the {$name} placeables of the pattern.
type Args map[string]any

// Ergo translates message identifiers using an ordered list of
// languages. The zero value is not usable; construct with New.
//
// Ergo is safe for concurrent use.
type Ergo struct {
	languages []language.Tag

	mu      sync.RWMutex
	bundles map[language.Tag]map[string]string
}

// New constructs an Ergo with a language fallback chain. The first tag
// is the preferred language; each later tag is consulted only when the
// earlier ones have no matching message. No resources are loaded here,
// use AddFromText or AddFromFile.
func New(languages ...language.Tag) *Ergo {
	return &Ergo{
		languages: languages,
		bundles:   make(map[language.Tag]map[string]string),
	}
}

// AddFromText registers translation messages for a language. The text
// can come from a constant, a file, the network, or anywhere else.
// Later definitions of an identifier override earlier ones within the
// same language.
//
// Registering a language that is not in the fallback chain is allowed
// but Tr will never consult it.
func (e *Ergo) AddFromText(lang language.Tag, text string) error {
	if !utf8.ValidString(text) {
		return &EncodingError{}
	}

	messages, err := parseResource(text)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	bundle, ok := e.bundles[lang]
	if !ok {
		bundle = make(map[string]string)
		e.bundles[lang] = bundle
	}
	for id, pattern := range messages {
		bundle[id] = pattern
	}
	return nil
}

// AddFromFile is AddFromText for a file on disk. The file must be
// UTF-8 encoded.
func (e *Ergo) AddFromFile(lang language.Tag, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return &EncodingError{Path: path}
	}
	return e.AddFromText(lang, string(data))
}

// Tr translates a message identifier, interpolating args into the
// pattern's placeables. Languages are searched in constructor order and
// the first bundle defining the identifier wins. A placeable whose
// argument is missing is rendered literally.
//
// Tr returns a NoMatchingMessageError only when no language bundle
// defines the identifier.
func (e *Ergo) Tr(msgid string, args Args) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, lang := range e.languages {
		bundle, ok := e.bundles[lang]
		if !ok {
			continue
		}
		pattern, ok := bundle[msgid]
		if !ok {
			continue
		}
		formatted := formatPattern(bundle, pattern, args, 0)
		return stripIsolates(formatted), nil
	}

	return "", &NoMatchingMessageError{ID: msgid}
}

// formatPattern substitutes placeables in a pattern. {$name} resolves
// from args and {other-id} embeds another message from the same bundle,
// both wrapped in isolation marks. Unresolvable placeables pass through
// verbatim.
func formatPattern(bundle map[string]string, pattern string, args Args, depth int) string {
	var out strings.Builder
	for {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			out.WriteString(pattern)
			break
		}
		length := strings.IndexByte(pattern[open:], '}')
		if length < 0 {
			out.WriteString(pattern)
			break
		}

		out.WriteString(pattern[:open])
		raw := pattern[open : open+length+1]
		token := strings.TrimSpace(pattern[open+1 : open+length])
		out.WriteString(resolvePlaceable(bundle, raw, token, args, depth))
		pattern = pattern[open+length+1:]
	}
	return out.String()
}

func resolvePlaceable(bundle map[string]string, raw, token string, args Args, depth int) string {
	if name, ok := strings.CutPrefix(token, "$"); ok {
		value, ok := args[name]
		if !ok {
			return raw
		}
		return isolateStart + formatValue(value) + isolateEnd
	}

	if messageIDPattern.MatchString(token) && depth < maxReferenceDepth {
		if nested, ok := bundle[token]; ok {
			return isolateStart + formatPattern(bundle, nested, args, depth+1) + isolateEnd
		}
	}
	return raw
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// stripIsolates removes the directional isolation marks added around
// interpolated values during formatting.
func stripIsolates(s string) string {
	if !strings.ContainsAny(s, isolateStart+isolateEnd) {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if r == '⁨' || r == '⁩' {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
