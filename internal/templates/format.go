package templates

import (
	"fmt"
	"strings"
)

// segment is either a literal run or a placeholder reference.
type segment struct {
	literal     string
	placeholder string
}

// format is a compiled format string. "{name}" references a binding,
// "{{" and "}}" produce literal braces.
type format struct {
	raw          string
	segments     []segment
	placeholders []string // distinct, in order of first use
	err          error    // deferred compile error (top-level entries only)
}

// compileFormat splits a format string into literal and placeholder segments.
// A conversion or format spec after the name ("{content!r}", "{width:>4}")
// is accepted and ignored.
func compileFormat(raw string) (*format, error) {
	f := &format{raw: raw}
	seen := make(map[string]bool)

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			f.segments = append(f.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '{' at offset %d in %q", ErrTemplateSyntax, i, raw)
			}
			field := raw[i+1 : i+1+end]
			if strings.ContainsRune(field, '{') {
				return nil, fmt.Errorf("%w: nested '{' at offset %d in %q", ErrTemplateSyntax, i, raw)
			}
			name := field
			if cut := strings.IndexAny(name, ":!"); cut >= 0 {
				name = name[:cut]
			}
			if name == "" {
				return nil, fmt.Errorf("%w: empty placeholder at offset %d in %q", ErrTemplateSyntax, i, raw)
			}
			flush()
			f.segments = append(f.segments, segment{placeholder: name})
			if !seen[name] {
				seen[name] = true
				f.placeholders = append(f.placeholders, name)
			}
			i += end + 1
		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w: single '}' at offset %d in %q", ErrTemplateSyntax, i, raw)
		default:
			lit.WriteByte(raw[i])
		}
	}
	flush()

	return f, nil
}

// apply substitutes bindings into the format. Unreferenced bindings are
// ignored; a missing one yields a *BindingError.
func (f *format) apply(category, key string, b Bindings) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	var out strings.Builder
	out.Grow(len(f.raw))
	for _, seg := range f.segments {
		if seg.placeholder == "" {
			out.WriteString(seg.literal)
			continue
		}
		v, ok := b[seg.placeholder]
		if !ok {
			return "", &BindingError{Category: category, Key: key, Placeholder: seg.placeholder}
		}
		out.WriteString(v)
	}
	return out.String(), nil
}
