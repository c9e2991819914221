package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Single-line HTML comments, shortest match
	htmlComment = regexp.MustCompile(`<!--.*?-->`)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines normalizes line endings and splits content into lines.
// A trailing newline does not produce a final empty line, and empty
// content yields no lines.
func SplitLines(content string) []string {
	content = NormalizeLineEndings(content)
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// preprocessLine trims surrounding whitespace and drops inline HTML comments.
// The result is not trimmed again after comment removal.
func preprocessLine(line string) string {
	line = strings.TrimSpace(line)
	return htmlComment.ReplaceAllString(line, "")
}
