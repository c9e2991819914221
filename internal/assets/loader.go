package assets

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the built-in template set used when none is named.
const DefaultTemplateName = "default"

// templateExts are the recognized template file extensions, in lookup order.
var templateExts = []string{".yaml", ".yml"}

// Loader defines the contract for loading template sets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// LoadTemplate returns the raw YAML of a template set by name
	// (without extension).
	// Returns ErrTemplateNotFound if the set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) ([]byte, error)

	// ListTemplates returns the available template set names, sorted.
	ListTemplates() ([]string, error)
}

// ValidateAssetName checks that a template name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or whitespace.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\. \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// templateName returns the set name for a file name with a template
// extension, or "" for anything else.
func templateName(file string) string {
	for _, ext := range templateExts {
		if name, ok := strings.CutSuffix(file, ext); ok && ValidateAssetName(name) == nil {
			return name
		}
	}
	return ""
}
