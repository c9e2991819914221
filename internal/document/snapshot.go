package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Snapshot type tags.
const (
	TypeDocument      = "document"
	TypeContent       = "content"
	TypeText          = "text"
	TypeInlineBold    = "inline_bold"
	TypeInlineItalic  = "inline_italic"
	TypeInlineCode    = "inline_code"
	TypeInlineFormula = "inline_formula"
	TypeParagraph     = "paragraph"
	TypeHeading       = "heading"
	TypeCodeBlock     = "code_block"
	TypeFormulaBlock  = "formula_block"
	TypeImage         = "image"
	TypeOrderedList   = "ordered_list"
	TypeUnorderedList = "unordered_list"
	TypeListItem      = "list_item"
	TypeSlideBreak    = "slide_break"
)

// Snapshot is the structural projection of a node. Only the fields of its
// Type are meaningful, and only those are written by MarshalJSON:
//
//	document, content, list_item   components
//	text, inline_*, formula_block  text
//	paragraph                      content
//	heading                        title, level
//	code_block                     code, lang
//	image                          path, caption
//	ordered_list, unordered_list   items
//	slide_break                    (none)
type Snapshot struct {
	Type       string     `json:"type"`
	Text       string     `json:"text,omitempty"`
	Code       []string   `json:"code,omitempty"`
	Lang       string     `json:"lang,omitempty"`
	Path       string     `json:"path,omitempty"`
	Level      int        `json:"level,omitempty"`
	Title      *Snapshot  `json:"title,omitempty"`
	Caption    *Snapshot  `json:"caption,omitempty"`
	Content    *Snapshot  `json:"content,omitempty"`
	Components []Snapshot `json:"components,omitempty"`
	Items      []Snapshot `json:"items,omitempty"`
}

// MarshalJSON writes "type" first and then the fields of that type, empty
// or not.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	w := fieldWriter{buf: &buf}
	w.field("type", s.Type)

	switch s.Type {
	case TypeDocument, TypeContent, TypeListItem:
		w.field("components", nonNil(s.Components))
	case TypeText, TypeInlineBold, TypeInlineItalic, TypeInlineCode, TypeInlineFormula, TypeFormulaBlock:
		w.field("text", s.Text)
	case TypeParagraph:
		w.field("content", s.Content)
	case TypeHeading:
		w.field("title", s.Title)
		w.field("level", s.Level)
	case TypeCodeBlock:
		code := s.Code
		if code == nil {
			code = []string{}
		}
		w.field("code", code)
		w.field("lang", s.Lang)
	case TypeImage:
		w.field("path", s.Path)
		w.field("caption", s.Caption)
	case TypeOrderedList, TypeUnorderedList:
		w.field("items", nonNil(s.Items))
	}

	if w.err != nil {
		return nil, w.err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func nonNil(s []Snapshot) []Snapshot {
	if s == nil {
		return []Snapshot{}
	}
	return s
}

type fieldWriter struct {
	buf *bytes.Buffer
	n   int
	err error
}

func (w *fieldWriter) field(name string, v any) {
	if w.err != nil {
		return
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.n++
	w.buf.WriteString(`"` + name + `":`)
	w.err = encode(w.buf, v)
}

// encode writes v without HTML escaping so LaTeX and markup survive as is.
func encode(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends '\n'
	return nil
}

// JSON returns the document snapshot indented with four spaces.
func (d *Document) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.Snapshot()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DocumentFromJSON rebuilds a document from the output of Document.JSON.
func DocumentFromJSON(data []byte) (*Document, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if s.Type != TypeDocument {
		return nil, fmt.Errorf("%w: root is %q, want %q", ErrInvalidSnapshot, s.Type, TypeDocument)
	}
	n, err := FromSnapshot(s)
	if err != nil {
		return nil, err
	}
	return n.(*Document), nil
}

// ---------------------------------------------------------------------------
// Node -> Snapshot
// ---------------------------------------------------------------------------

func snapshots(nodes []Node) []Snapshot {
	out := make([]Snapshot, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Snapshot())
	}
	return out
}

func (d *Document) Snapshot() Snapshot {
	return Snapshot{Type: TypeDocument, Components: snapshots(d.Components)}
}

func (c *Content) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{Type: TypeContent, Components: []Snapshot{}}
	}
	return Snapshot{Type: TypeContent, Components: snapshots(c.Components)}
}

func (t *Text) Snapshot() Snapshot          { return Snapshot{Type: TypeText, Text: t.Text} }
func (b *InlineBold) Snapshot() Snapshot    { return Snapshot{Type: TypeInlineBold, Text: b.Text} }
func (i *InlineItalic) Snapshot() Snapshot  { return Snapshot{Type: TypeInlineItalic, Text: i.Text} }
func (c *InlineCode) Snapshot() Snapshot    { return Snapshot{Type: TypeInlineCode, Text: c.Text} }
func (f *InlineFormula) Snapshot() Snapshot { return Snapshot{Type: TypeInlineFormula, Text: f.Text} }
func (f *FormulaBlock) Snapshot() Snapshot  { return Snapshot{Type: TypeFormulaBlock, Text: f.Text} }
func (*SlideBreak) Snapshot() Snapshot      { return Snapshot{Type: TypeSlideBreak} }

func (p *Paragraph) Snapshot() Snapshot {
	c := p.Content.Snapshot()
	return Snapshot{Type: TypeParagraph, Content: &c}
}

func (h *Heading) Snapshot() Snapshot {
	t := h.Title.Snapshot()
	return Snapshot{Type: TypeHeading, Title: &t, Level: h.Level}
}

func (c *CodeBlock) Snapshot() Snapshot {
	return Snapshot{Type: TypeCodeBlock, Code: append([]string{}, c.Code...), Lang: c.Lang}
}

func (img *Image) Snapshot() Snapshot {
	c := img.Caption.Snapshot()
	return Snapshot{Type: TypeImage, Path: img.Path, Caption: &c}
}

func (li *ListItem) Snapshot() Snapshot {
	return Snapshot{Type: TypeListItem, Components: snapshots(li.Components)}
}

func itemSnapshots(items []*ListItem) []Snapshot {
	out := make([]Snapshot, 0, len(items))
	for _, item := range items {
		out = append(out, item.Snapshot())
	}
	return out
}

func (l *OrderedList) Snapshot() Snapshot {
	return Snapshot{Type: TypeOrderedList, Items: itemSnapshots(l.Items)}
}

func (l *UnorderedList) Snapshot() Snapshot {
	return Snapshot{Type: TypeUnorderedList, Items: itemSnapshots(l.Items)}
}

// ---------------------------------------------------------------------------
// Snapshot -> Node
// ---------------------------------------------------------------------------

// FromSnapshot rebuilds the node described by s. Text fields are taken as
// stored, so escaping is not applied twice.
func FromSnapshot(s Snapshot) (Node, error) {
	switch s.Type {
	case TypeDocument:
		nodes, err := fromSnapshots(s.Components)
		if err != nil {
			return nil, err
		}
		return &Document{Components: nodes}, nil
	case TypeContent:
		c, err := contentFrom(&s, "content")
		if err != nil {
			return nil, err
		}
		return c, nil
	case TypeListItem:
		item, err := listItemFrom(s)
		if err != nil {
			return nil, err
		}
		return item, nil
	case TypeText:
		return &Text{Text: s.Text}, nil
	case TypeInlineBold:
		return &InlineBold{Text: s.Text}, nil
	case TypeInlineItalic:
		return &InlineItalic{Text: s.Text}, nil
	case TypeInlineCode:
		return &InlineCode{Text: s.Text}, nil
	case TypeInlineFormula:
		return &InlineFormula{Text: s.Text}, nil
	case TypeFormulaBlock:
		return &FormulaBlock{Text: s.Text}, nil
	case TypeSlideBreak:
		return &SlideBreak{}, nil
	case TypeParagraph:
		c, err := contentFrom(s.Content, "paragraph content")
		if err != nil {
			return nil, err
		}
		return &Paragraph{Content: c}, nil
	case TypeHeading:
		c, err := contentFrom(s.Title, "heading title")
		if err != nil {
			return nil, err
		}
		return &Heading{Title: c, Level: s.Level}, nil
	case TypeCodeBlock:
		cb := NewCodeBlock(s.Lang)
		cb.Code = append(cb.Code, s.Code...)
		return cb, nil
	case TypeImage:
		c, err := contentFrom(s.Caption, "image caption")
		if err != nil {
			return nil, err
		}
		return &Image{Path: s.Path, Caption: c}, nil
	case TypeOrderedList:
		items, err := listItemsFrom(s.Items)
		if err != nil {
			return nil, err
		}
		return &OrderedList{Items: items}, nil
	case TypeUnorderedList:
		items, err := listItemsFrom(s.Items)
		if err != nil {
			return nil, err
		}
		return &UnorderedList{Items: items}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, s.Type)
	}
}

func fromSnapshots(ss []Snapshot) ([]Node, error) {
	nodes := make([]Node, 0, len(ss))
	for _, s := range ss {
		n, err := FromSnapshot(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func contentFrom(s *Snapshot, what string) (*Content, error) {
	if s == nil || s.Type != TypeContent {
		return nil, fmt.Errorf("%w: %s must be a %q node", ErrInvalidSnapshot, what, TypeContent)
	}
	nodes, err := fromSnapshots(s.Components)
	if err != nil {
		return nil, err
	}
	return &Content{Components: nodes}, nil
}

func listItemFrom(s Snapshot) (*ListItem, error) {
	nodes, err := fromSnapshots(s.Components)
	if err != nil {
		return nil, err
	}
	return &ListItem{Components: nodes}, nil
}

func listItemsFrom(ss []Snapshot) ([]*ListItem, error) {
	items := make([]*ListItem, 0, len(ss))
	for _, s := range ss {
		if s.Type != TypeListItem {
			return nil, fmt.Errorf("%w: list entry is %q, want %q", ErrInvalidSnapshot, s.Type, TypeListItem)
		}
		item, err := listItemFrom(s)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
