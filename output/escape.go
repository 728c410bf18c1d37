// Package output renders module records: as a directory tree with one
// sentence per line (the layout used by CoNLL-style annotation tools), as
// human-readable text, as JSON or as an HTML page.
package output

import (
	"errors"
	"strings"
	"unicode"
)

// ErrFilenameEscape is matched by every *FilenameEscapeError via errors.Is.
var ErrFilenameEscape = errors.New("cannot escape filename")

// FilenameEscapeError reports a value that cannot be turned into a file
// name component.
type FilenameEscapeError struct {
	Value string
}

func (e *FilenameEscapeError) Error() string {
	return "cannot escape filename from empty value"
}

// Is makes errors.Is(err, ErrFilenameEscape) succeed.
func (e *FilenameEscapeError) Is(target error) bool {
	return target == ErrFilenameEscape
}

// EscapeFilename replaces every rune that is not a letter, number,
// underscore, hyphen or dot with an underscore:
//
//	EscapeFilename("Intro / Basics?!") // "Intro___Basics__"
//
// An empty value cannot be escaped and yields a *FilenameEscapeError.
func EscapeFilename(s string) (string, error) {
	if s == "" {
		return "", &FilenameEscapeError{Value: s}
	}
	return strings.Map(func(r rune) rune {
		if isFilenameRune(r) {
			return r
		}
		return '_'
	}, s), nil
}

func isFilenameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' || r == '.'
}
