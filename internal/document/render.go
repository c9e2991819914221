package document

import (
	"strings"

	"github.com/alnah/go-texweaver/internal/templates"
)

// Document is the root of a parsed tree.
type Document struct {
	Components []Node
}

// Metadata is bound to the document skeleton templates as {title},
// {author} and {date}. Values are escaped like plain text.
type Metadata struct {
	Title  string
	Author string
	Date   string
}

// AddComponent appends a top-level block.
func (d *Document) AddComponent(n Node) {
	d.Components = append(d.Components, n)
}

// Built-in skeleton used when a template set has no document category.
const (
	DefaultPreamble = `\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{graphicx}
\usepackage{float}
\usepackage{listings}
\usepackage{xcolor}`
	DefaultBeginDocument = "\\begin{document}\n"
	DefaultEndDocument   = `\end{document}`
)

// Render produces a complete LaTeX document with empty metadata.
func (d *Document) Render(store *templates.Store) (string, error) {
	return d.RenderWith(store, Metadata{})
}

// RenderWith produces a complete LaTeX document. A preamble mentioning
// beamer switches to presentation output, where slide breaks delimit
// frames. The first binding error aborts the render.
func (d *Document) RenderWith(store *templates.Store, meta Metadata) (string, error) {
	b := templates.Bindings{
		"content": "",
		"title":   Escape(meta.Title),
		"author":  Escape(meta.Author),
		"date":    Escape(meta.Date),
	}

	preamble, err := skeleton(store, templates.SitePreamble, b, DefaultPreamble)
	if err != nil {
		return "", err
	}
	begin, err := skeleton(store, templates.SiteBeginDocument, b, DefaultBeginDocument)
	if err != nil {
		return "", err
	}
	end, err := skeleton(store, templates.SiteEndDocument, b, DefaultEndDocument)
	if err != nil {
		return "", err
	}

	var content string
	if IsPresentation(preamble) {
		content, err = d.renderFrames(store)
	} else {
		content, err = d.renderFlat(store)
	}
	if err != nil {
		return "", err
	}

	return preamble + "\n" + begin + "\n" + content + "\n" + end, nil
}

// IsPresentation reports whether a preamble selects the beamer class.
func IsPresentation(preamble string) bool {
	return strings.Contains(strings.ToLower(preamble), "beamer")
}

func skeleton(store *templates.Store, site templates.Site, b templates.Bindings, def string) (string, error) {
	s, err := store.Apply(site, b)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (d *Document) renderFlat(store *templates.Store) (string, error) {
	parts := make([]string, 0, len(d.Components))
	for _, n := range d.Components {
		s, err := n.Render(store)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}

// renderFrames wraps the components between slide breaks in beamer frames.
// Slide breaks themselves are not rendered. A frame holding a code block
// is opened [fragile].
func (d *Document) renderFrames(store *templates.Store) (string, error) {
	if len(d.Components) == 0 {
		return "", nil
	}

	var parts []string
	open := false
	for i, n := range d.Components {
		if _, ok := n.(*SlideBreak); ok {
			if open {
				parts = append(parts, "\\end{frame}\n")
			}
			parts = append(parts, beginFrame(d.Components[i+1:]))
			open = true
			continue
		}
		if !open {
			parts = append(parts, beginFrame(d.Components))
			open = true
		}
		s, err := n.Render(store)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if open {
		parts = append(parts, `\end{frame}`)
	}
	return strings.Join(parts, "\n"), nil
}

// beginFrame opens a frame for the components up to the next slide break.
func beginFrame(rest []Node) string {
	for _, n := range rest {
		switch n.(type) {
		case *SlideBreak:
			return `\begin{frame}`
		case *CodeBlock:
			return `\begin{frame}[fragile]`
		}
	}
	return `\begin{frame}`
}
