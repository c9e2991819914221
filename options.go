package texweaver

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	templateName   string
	templateFile   string
	assetPath      string
	templateConfig *TemplateConfig
	strict         bool
}

// WithTemplate selects a template set by name. Sets under the asset path
// take precedence over the built-in ones.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithTemplateFile loads the template set from a YAML file. It takes
// precedence over WithTemplate.
func WithTemplateFile(path string) Option {
	return func(c *Converter) {
		c.cfg.templateFile = path
	}
}

// WithAssetPath sets a directory of custom template sets searched before
// the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithTemplateConfig uses an already decoded template set. It takes
// precedence over WithTemplateFile and WithTemplate.
func WithTemplateConfig(cfg TemplateConfig) Option {
	return func(c *Converter) {
		c.cfg.templateConfig = &cfg
	}
}

// WithStrictTemplates makes NewConverter fail when a template references a
// placeholder its call site does not provide.
func WithStrictTemplates(strict bool) Option {
	return func(c *Converter) {
		c.cfg.strict = strict
	}
}

// WithLogger sets the logger for parse warnings and template loading.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the time source used for "auto" dates. Batch tools
// pass a fixed clock so every file of a run gets the same date.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}
