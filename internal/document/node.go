// Package document defines the tree produced by the parser and rendered
// to LaTeX through a template store.
package document

import (
	"strings"

	"github.com/alnah/go-texweaver/internal/templates"
)

// Node is a component of the document tree.
type Node interface {
	Render(store *templates.Store) (string, error)
	Snapshot() Snapshot
}

// Escape protects underscores for LaTeX text mode.
func Escape(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// ---------------------------------------------------------------------------
// Containers
// ---------------------------------------------------------------------------

// Content is a run of inline spans rendered back to back.
type Content struct {
	Components []Node
}

// AddComponent appends an inline span.
func (c *Content) AddComponent(n Node) {
	c.Components = append(c.Components, n)
}

// Len returns the number of spans.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Components)
}

func (c *Content) Render(store *templates.Store) (string, error) {
	if c == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, n := range c.Components {
		s, err := n.Render(store)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// ListItem holds the components of one list entry. The parser only ever
// adds a single Content.
type ListItem struct {
	Components []Node
}

// AddComponent appends a component to the item.
func (li *ListItem) AddComponent(n Node) {
	li.Components = append(li.Components, n)
}

func (li *ListItem) Render(store *templates.Store) (string, error) {
	var sb strings.Builder
	for _, n := range li.Components {
		s, err := n.Render(store)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return store.Apply(templates.SiteListItem, templates.Bindings{"content": sb.String()})
}

// OrderedList is a numbered list.
type OrderedList struct {
	Items []*ListItem
}

// AddItem appends an item to the list.
func (l *OrderedList) AddItem(item *ListItem) {
	l.Items = append(l.Items, item)
}

func (l *OrderedList) Render(store *templates.Store) (string, error) {
	return renderList(store, templates.SiteOrderedList, l.Items)
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	Items []*ListItem
}

// AddItem appends an item to the list.
func (l *UnorderedList) AddItem(item *ListItem) {
	l.Items = append(l.Items, item)
}

func (l *UnorderedList) Render(store *templates.Store) (string, error) {
	return renderList(store, templates.SiteUnorderedList, l.Items)
}

func renderList(store *templates.Store, site templates.Site, items []*ListItem) (string, error) {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		s, err := item.Render(store)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, s)
	}
	return store.Apply(site, templates.Bindings{"items": strings.Join(rendered, "\n")})
}

// ---------------------------------------------------------------------------
// Inline spans
// ---------------------------------------------------------------------------

// Text is a plain run. Text holds the escaped form.
type Text struct {
	Text string
}

// NewText escapes s and wraps it in a Text span.
func NewText(s string) *Text { return &Text{Text: Escape(s)} }

func (t *Text) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteText, templates.Bindings{"content": t.Text})
}

// InlineBold is a **bold** span.
type InlineBold struct {
	Text string
}

// NewInlineBold escapes s and wraps it in a bold span.
func NewInlineBold(s string) *InlineBold { return &InlineBold{Text: Escape(s)} }

func (b *InlineBold) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteBold, templates.Bindings{"content": b.Text})
}

// InlineItalic is an *italic* span.
type InlineItalic struct {
	Text string
}

// NewInlineItalic escapes s and wraps it in an italic span.
func NewInlineItalic(s string) *InlineItalic { return &InlineItalic{Text: Escape(s)} }

func (i *InlineItalic) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteItalic, templates.Bindings{"content": i.Text})
}

// InlineCode is a `code` span.
type InlineCode struct {
	Text string
}

// NewInlineCode escapes s and wraps it in an inline code span.
func NewInlineCode(s string) *InlineCode { return &InlineCode{Text: Escape(s)} }

func (c *InlineCode) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteInlineCode, templates.Bindings{"content": c.Text})
}

// InlineFormula is a $math$ span. Its text is never escaped.
type InlineFormula struct {
	Text string
}

// NewInlineFormula wraps s unchanged.
func NewInlineFormula(s string) *InlineFormula { return &InlineFormula{Text: s} }

func (f *InlineFormula) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteInlineFormula, templates.Bindings{"content": f.Text})
}

// ---------------------------------------------------------------------------
// Blocks
// ---------------------------------------------------------------------------

// Paragraph wraps one line of inline content.
type Paragraph struct {
	Content *Content
}

func (p *Paragraph) Render(store *templates.Store) (string, error) {
	content, err := p.Content.Render(store)
	if err != nil {
		return "", err
	}
	return store.Apply(templates.SiteParagraph, templates.Bindings{"content": content})
}

// Heading is a section title. Levels above templates.MaxHeadingLevel
// render through the bold template.
type Heading struct {
	Title *Content
	Level int
}

func (h *Heading) Render(store *templates.Store) (string, error) {
	content, err := h.Title.Render(store)
	if err != nil {
		return "", err
	}
	return store.Apply(templates.HeadingSite(h.Level), templates.Bindings{"content": content})
}

// DefaultLang is the language of a fenced block without a tag.
const DefaultLang = "text"

// CodeBlock is a fenced block. Lines are kept verbatim.
type CodeBlock struct {
	Lang string
	Code []string
}

// NewCodeBlock returns an empty block, defaulting lang to DefaultLang.
func NewCodeBlock(lang string) *CodeBlock {
	if lang == "" {
		lang = DefaultLang
	}
	return &CodeBlock{Lang: lang}
}

// AddCode appends one raw line.
func (c *CodeBlock) AddCode(line string) {
	c.Code = append(c.Code, line)
}

func (c *CodeBlock) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteCodeBlock, templates.Bindings{
		"code":      strings.Join(c.Code, "\n"),
		"lang":      c.Lang,
		"lang_name": LanguageName(c.Lang),
	})
}

// FormulaBlock is a $$ display math block, newline-joined and never escaped.
type FormulaBlock struct {
	Text string
}

func (f *FormulaBlock) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteBlockFormula, templates.Bindings{"content": f.Text})
}

// Image is a ![caption](path) line.
type Image struct {
	Path    string
	Caption *Content
}

// imageWidth is the fraction of \textwidth bound to {width}.
const imageWidth = "0.8"

const maxLabelLen = 20

func (img *Image) Render(store *templates.Store) (string, error) {
	caption, err := img.Caption.Render(store)
	if err != nil {
		return "", err
	}
	return store.Apply(templates.SiteImage, templates.Bindings{
		"src":   img.Path,
		"alt":   caption,
		"width": imageWidth,
		"label": ImageLabel(caption),
	})
}

var labelReplacer = strings.NewReplacer(" ", "_", `\`, "", "{", "", "}", "")

// ImageLabel derives a \label key from a rendered caption: spaces become
// underscores, backslashes and braces are dropped, the result is lowercased
// and cut to 20 characters. Blank captions yield "image".
func ImageLabel(caption string) string {
	if strings.TrimSpace(caption) == "" {
		return "image"
	}
	label := []rune(strings.ToLower(labelReplacer.Replace(caption)))
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen]
	}
	if len(label) == 0 {
		return "image"
	}
	return string(label)
}

// SlideBreak separates presentation frames.
type SlideBreak struct{}

func (*SlideBreak) Render(store *templates.Store) (string, error) {
	return store.Apply(templates.SiteSlideBreak, templates.Bindings{"content": ""})
}
