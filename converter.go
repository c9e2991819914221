package texweaver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-texweaver/internal/assets"
	"github.com/alnah/go-texweaver/internal/dateutil"
	"github.com/alnah/go-texweaver/internal/pipeline"
	"github.com/alnah/go-texweaver/internal/templates"
)

// MinimalTemplate names the built-in fallback set from
// templates.MinimalConfig. It never touches the asset loaders.
const MinimalTemplate = "minimal"

// Converter turns Markdown into LaTeX with one template set.
// The template store is read-only after NewConverter, so a Converter is
// safe for concurrent use; each Convert call gets its own parser.
type Converter struct {
	cfg    converterConfig
	logger *zap.Logger
	now    func() time.Time
	store  *templates.Store
}

// NewConverter loads the template set chosen by the options (the built-in
// "default" set otherwise) and compiles it.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    converterConfig{templateName: assets.DefaultTemplateName},
		logger: zap.NewNop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	cfg, err := c.loadTemplateConfig()
	if err != nil {
		return nil, err
	}

	c.store, err = templates.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("compiling templates: %w", err)
	}

	if c.cfg.strict {
		if err := c.Check(); err != nil {
			return nil, err
		}
	}

	info := c.store.Info()
	c.logger.Debug("template set loaded",
		zap.String("name", info.Name),
		zap.String("version", info.Version))

	return c, nil
}

// loadTemplateConfig resolves the template options in precedence order:
// decoded config, file, then name.
func (c *Converter) loadTemplateConfig() (templates.Config, error) {
	if c.cfg.templateConfig != nil {
		return *c.cfg.templateConfig, nil
	}

	if c.cfg.templateFile != "" {
		data, err := os.ReadFile(c.cfg.templateFile) // #nosec G304 -- user-provided path
		if err != nil {
			return templates.Config{}, fmt.Errorf("%w: %v", ErrTemplateFile, err)
		}
		return templates.ParseConfig(data)
	}

	if c.cfg.templateName == MinimalTemplate {
		return templates.MinimalConfig(), nil
	}

	loader, err := newLoader(c.cfg.assetPath)
	if err != nil {
		return templates.Config{}, err
	}

	data, err := loader.LoadTemplate(c.cfg.templateName)
	if err != nil {
		// Only the implicit default degrades; a named set must exist.
		if errors.Is(err, assets.ErrTemplateNotFound) && c.cfg.templateName == assets.DefaultTemplateName {
			c.logger.Warn("default template set not found, using minimal templates", zap.Error(err))
			return templates.MinimalConfig(), nil
		}
		return templates.Config{}, fmt.Errorf("loading template %q: %w", c.cfg.templateName, err)
	}

	return templates.ParseConfig(data)
}

func newLoader(assetPath string) (assets.Loader, error) {
	if assetPath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// Convert parses the Markdown and renders it with the converter's
// templates. A binding error aborts the whole render and no LaTeX is
// returned. Unterminated fenced blocks are not errors: they are left out
// and reported in ConvertResult.Dropped.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Markdown) > MaxMarkdownSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), MaxMarkdownSize)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta, err := c.resolveMetadata(input.Metadata)
	if err != nil {
		return nil, err
	}

	parser := pipeline.NewParser(pipeline.WithLogger(c.logger))
	doc := parser.Parse(input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	latex, err := doc.RenderWith(c.store, meta)
	if err != nil {
		return nil, fmt.Errorf("rendering LaTeX: %w", err)
	}

	return &ConvertResult{
		LaTeX:    latex,
		Document: doc,
		Dropped:  parser.Dropped(),
	}, nil
}

func (c *Converter) resolveMetadata(meta Metadata) (Metadata, error) {
	date, err := dateutil.ResolveDate(meta.Date, c.now())
	if err != nil {
		return Metadata{}, err
	}
	meta.Date = date
	return meta, nil
}

// Render renders an already parsed document with the converter's templates.
func (c *Converter) Render(doc *Document, meta Metadata) (string, error) {
	meta, err := c.resolveMetadata(meta)
	if err != nil {
		return "", err
	}
	return doc.RenderWith(c.store, meta)
}

// TemplateInfo returns the metadata of the loaded template set.
func (c *Converter) TemplateInfo() TemplateInfo {
	return c.store.Info()
}

// Templates returns the compiled template store.
func (c *Converter) Templates() *TemplateStore {
	return c.store
}

// Check reports every template that references a placeholder its call
// site does not provide. Errors are combined with go.uber.org/multierr.
func (c *Converter) Check() error {
	return c.store.Check(templates.Sites()...)
}
