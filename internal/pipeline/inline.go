package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-texweaver/internal/document"
)

// inlineSpan matches, in priority order at each position: **bold**,
// *italic*, `code`, $math$, or a run free of delimiter characters.
var inlineSpan = regexp.MustCompile("(\\*\\*[^*]+\\*\\*|\\*[^*]+\\*|`[^`]+`|\\$[^$]+\\$|[^`$*]+)")

// ScanInline splits a line into inline spans. It never fails: delimiter
// characters that cannot open a span become one-character text spans.
// An empty line yields an empty Content.
func ScanInline(line string) *document.Content {
	content := &document.Content{}

	pos := 0
	for _, m := range inlineSpan.FindAllStringIndex(line, -1) {
		addStray(content, line[pos:m[0]])
		content.AddComponent(classify(line[m[0]:m[1]]))
		pos = m[1]
	}
	addStray(content, line[pos:])

	return content
}

// addStray emits each unmatched delimiter character as its own text span.
// Gaps between matches only ever hold delimiter characters.
func addStray(content *document.Content, gap string) {
	for _, r := range gap {
		content.AddComponent(document.NewText(string(r)))
	}
}

func classify(tok string) document.Node {
	switch {
	case strings.HasPrefix(tok, "`"):
		return document.NewInlineCode(tok[1 : len(tok)-1])
	case strings.HasPrefix(tok, "$"):
		return document.NewInlineFormula(tok[1 : len(tok)-1])
	case strings.HasPrefix(tok, "**"):
		return document.NewInlineBold(tok[2 : len(tok)-2])
	case strings.HasPrefix(tok, "*"):
		return document.NewInlineItalic(tok[1 : len(tok)-1])
	default:
		return document.NewText(tok)
	}
}
