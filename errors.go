package texweaver

import (
	"errors"

	"github.com/alnah/go-texweaver/internal/assets"
	"github.com/alnah/go-texweaver/internal/dateutil"
	"github.com/alnah/go-texweaver/internal/document"
	"github.com/alnah/go-texweaver/internal/templates"
)

// Sentinel errors for library operations.
var (
	ErrInputTooLarge    = errors.New("markdown input too large")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateFile     = errors.New("cannot read template file")

	// Template errors, shared with the template store.
	ErrTemplateBinding = templates.ErrTemplateBinding
	ErrTemplateSyntax  = templates.ErrTemplateSyntax
	ErrTemplateConfig  = templates.ErrTemplateConfig

	// Template lookup errors.
	ErrTemplateNotFound    = assets.ErrTemplateNotFound
	ErrInvalidTemplateName = assets.ErrInvalidAssetName

	// Metadata errors.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat

	// Snapshot decoding errors.
	ErrUnknownNodeType = document.ErrUnknownNodeType
	ErrInvalidSnapshot = document.ErrInvalidSnapshot
)
