// Package doctest converts source lines into interactive session transcripts.
package doctest

import "errors"

// Prompt markers of an interactive Python session.
const (
	PS1 = ">>> "
	PS2 = "... "
)

// Converter prefixes code lines with session prompts.
//
// Convert appends the converted form of lines to context and returns the
// result. Every element of lines must be non-blank.
type Converter interface {
	Convert(lines, context []string) ([]string, error)
}

// ErrBlankLine is returned when a blank line is passed to a [Converter].
var ErrBlankLine = errors.New("blank line in code")
