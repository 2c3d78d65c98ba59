package fluent

import "fmt"

// EncodingError indicates a translation source is not valid UTF-8.
type EncodingError struct {
	Path string
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return "translation text has an encoding problem: not valid UTF-8"
	}
	return fmt.Sprintf("translation file %s has an encoding problem: not valid UTF-8", e.Path)
}

// ParseError indicates a malformed line in a translation resource.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// NoMatchingMessageError is returned by Tr when the message identifier
// is not defined in any loaded language bundle.
type NoMatchingMessageError struct {
	ID string
}

func (e *NoMatchingMessageError) Error() string {
	return fmt.Sprintf("no matching message for %s", e.ID)
}

// ResourceError indicates a translation file could not be read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("reading translation file %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
