package rewriter

import (
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
)

// Mode selects how a document is split into units.
type Mode string

const (
	// ModeLine treats every line as one unit.
	ModeLine Mode = "line"
	// ModeToken treats every run of characters between single spaces as one unit.
	ModeToken Mode = "token"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLine, "":
		return ModeLine, nil
	case ModeToken:
		return ModeToken, nil
	default:
		return "", errors.Newf(errors.ErrInvalidMode, "unknown mode %q (want %q or %q)", s, ModeLine, ModeToken).
			WithDetail("mode", s)
	}
}

// Split breaks text into units for the mode.
func (m Mode) Split(text string) []string {
	if m == ModeToken {
		return Tokens(text)
	}
	return Lines(text)
}

// Lines splits text on \n. A trailing \r is removed from each line and a
// final newline does not start an extra, empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Tokens splits text on every single space. Consecutive spaces yield empty
// tokens.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// Join joins output lines with a single newline and no trailing separator.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
