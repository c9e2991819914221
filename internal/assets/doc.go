// Package assets provides the LaTeX template sets used for rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in template sets (default, academic,
// book, presentation) embedded at compile time.
//
// FilesystemLoader allows users to provide custom template sets from a
// directory, with path traversal protection and symlink resolution.
//
// Resolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template
// set is not found. This enables overriding one set while keeping the
// others.
//
// # Directory Structure
//
// A custom asset directory holds one YAML file per template set:
//
//	{basePath}/
//	├── thesis.yaml          # selected with name "thesis"
//	└── default.yml          # overrides the built-in default
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
