package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a built-in template set by name using the default
// embedded loader. The name should not include the .yaml extension.
// Returns ErrTemplateNotFound if the set does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or dots.
func LoadTemplate(name string) ([]byte, error) {
	return defaultLoader.LoadTemplate(name)
}

// ListTemplates returns the built-in template set names.
func ListTemplates() ([]string, error) {
	return defaultLoader.ListTemplates()
}
