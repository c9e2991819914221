// Package texweaver converts a small Markdown dialect to LaTeX through
// swappable template sets.
//
// # Quick Start
//
//	conv, err := texweaver.NewConverter(texweaver.WithTemplate("academic"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, texweaver.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Metadata: texweaver.Metadata{Title: "Notes", Date: "auto"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.tex", []byte(result.LaTeX), 0644)
//
// # Conversion Pipeline
//
//  1. Line parsing into a document tree (headings, paragraphs, lists,
//     fenced code and math, images, slide breaks)
//  2. Rendering: every node fills the template of its call site, and the
//     result is wrapped in the preamble and document environment
//
// A preamble mentioning beamer switches the renderer to presentation
// mode, where "---" lines split the output into frames.
//
// # Template Sets
//
// A template set is a YAML file of categories holding format strings:
//
//	name: Academic
//	formatting:
//	  bold: "\\textbf{{{content}}}"
//	  heading1: "\\section{{{content}}}\n"
//
// Placeholders are written {name}; doubled braces are literal. The
// built-in sets are default, academic, book and presentation. Custom
// sets are loaded with WithTemplateFile, or by name from WithAssetPath,
// which shadows the built-ins.
//
// # Errors
//
// A template that references a placeholder its call site does not
// provide fails the render with ErrTemplateBinding; no partial LaTeX is
// returned. WithStrictTemplates reports such templates up front.
package texweaver
