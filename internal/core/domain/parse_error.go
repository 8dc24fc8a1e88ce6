package domain

import (
	"fmt"
	"strconv"
)

// ParseError reports a requirements line that cannot be turned into a declaration.
type ParseError struct {
	// File is the requirements file the line came from.
	File string
	// Line is the 1-based line number of the logical line.
	Line int
	// Text is the offending line with continuations joined.
	Text string
	// Err is the sentinel describing what is wrong with the line.
	Err error
	// Previous locates an earlier conflicting declaration, as file:line.
	Previous string
}

// Location returns the file:line position of the error.
func (e *ParseError) Location() string {
	return e.File + ":" + strconv.Itoa(e.Line)
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %v: %q", e.Location(), e.Err, e.Text)
	if e.Previous != "" {
		msg += " (first declared at " + e.Previous + ")"
	}
	return msg
}

// Unwrap exposes the sentinel so errors.Is works against domain errors.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message returns the error headline without the cause.
func (e *ParseError) Message() string {
	return "invalid requirement at " + e.Location()
}

// Metadata returns the structured context of the error.
func (e *ParseError) Metadata() map[string]any {
	md := map[string]any{"line": e.Text}
	if e.Previous != "" {
		md["first_declared"] = e.Previous
	}
	return md
}
