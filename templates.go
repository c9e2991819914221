package texweaver

import (
	"github.com/alnah/go-texweaver/internal/document"
	"github.com/alnah/go-texweaver/internal/pipeline"
	"github.com/alnah/go-texweaver/internal/templates"
)

// Parse parses Markdown into a document tree. Unterminated fenced blocks
// are dropped silently; use a Converter to learn about them.
func Parse(markdown string) *Document {
	return pipeline.Parse(markdown)
}

// Render renders doc with store and no metadata.
func Render(doc *Document, store *TemplateStore) (string, error) {
	return doc.Render(store)
}

// DocumentFromJSON rebuilds a document from its JSON snapshot.
func DocumentFromJSON(data []byte) (*Document, error) {
	return document.DocumentFromJSON(data)
}

// ParseTemplateConfig decodes a YAML template set.
func ParseTemplateConfig(data []byte) (TemplateConfig, error) {
	return templates.ParseConfig(data)
}

// NewTemplateStore compiles a template set.
func NewTemplateStore(cfg TemplateConfig) (*TemplateStore, error) {
	return templates.New(cfg)
}

// ListTemplates returns the names of the available template sets: the
// built-in ones plus those under assetPath when it is not empty.
func ListTemplates(assetPath string) ([]string, error) {
	loader, err := newLoader(assetPath)
	if err != nil {
		return nil, err
	}
	return loader.ListTemplates()
}

// LoadTemplateInfo loads a template set by name and returns its metadata.
func LoadTemplateInfo(name, assetPath string) (TemplateInfo, error) {
	conv, err := NewConverter(WithTemplate(name), WithAssetPath(assetPath))
	if err != nil {
		return TemplateInfo{}, err
	}
	return conv.TemplateInfo(), nil
}
