// Package dateutil resolves the document date bound to the {date}
// placeholder of the document templates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// LaTeXToday is the LaTeX macro that prints the compilation date. The
// value "today" resolves to it, leaving the date to the TeX engine.
const LaTeXToday = `\today`

// dateTokens maps user-friendly tokens to Go layout components.
// Longer tokens come first so matching is greedy.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"short":    "MMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to a Go layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text inside brackets is kept
// literally ("[Date]" yields "Date"); other characters pass through.
func ParseDateFormat(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		tok, layout := matchToken(rest)
		if tok == 0 {
			b.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		b.WriteString(layout)
		rest = rest[tok:]
	}

	return b.String(), nil
}

// matchToken returns the byte length and layout of the token at the start
// of s, or 0 when none matches.
func matchToken(s string) (int, string) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return len(t.token), t.goFmt
		}
	}
	return 0, ""
}

// ResolveDate expands the special date values:
//
//	"auto"         current date as YYYY-MM-DD
//	"auto:FORMAT"  current date in FORMAT or a named preset
//	"today"        the \today macro
//
// Anything else is returned unchanged. now is injected for tests.
func ResolveDate(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)

	switch {
	case lower == "today":
		return LaTeXToday, nil
	case !strings.HasPrefix(lower, "auto"):
		return value, nil
	case lower == "auto":
		return formatDate(DefaultDateFormat, now)
	case !strings.HasPrefix(lower, "auto:"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	// Keep the original case: tokens are upper case.
	format := value[len("auto:"):]
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return formatDate(format, now)
}

func formatDate(format string, now time.Time) (string, error) {
	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
