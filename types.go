package texweaver

import (
	"github.com/alnah/go-texweaver/internal/document"
	"github.com/alnah/go-texweaver/internal/pipeline"
	"github.com/alnah/go-texweaver/internal/templates"
)

// MaxMarkdownSize bounds the Markdown accepted by Convert.
const MaxMarkdownSize = 16 << 20

// Aliases for the types that cross the package boundary.
type (
	// Document is the parsed document tree.
	Document = document.Document

	// Metadata is bound to the {title}, {author} and {date} placeholders
	// of the document templates.
	Metadata = document.Metadata

	// DroppedBlock is a fenced block left open at end of input.
	DroppedBlock = pipeline.DroppedBlock

	// TemplateConfig is a decoded template set.
	TemplateConfig = templates.Config

	// TemplateInfo is a template set's descriptive metadata.
	TemplateInfo = templates.Info

	// TemplateStore resolves and fills format templates.
	TemplateStore = templates.Store

	// BindingError details a template that references an unbound placeholder.
	BindingError = templates.BindingError
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string   // Markdown source
	Metadata Metadata // Optional; Date accepts "auto", "auto:FORMAT" and "today"
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	LaTeX    string         // rendered LaTeX source
	Document *Document      // parsed tree, for snapshots and inspection
	Dropped  []DroppedBlock // unterminated blocks left out of the output
}
