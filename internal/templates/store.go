package templates

import (
	"fmt"

	"go.uber.org/multierr"
)

// Bindings maps placeholder names to the values substituted into a template.
type Bindings map[string]string

// Config is a template configuration as produced by a loader: ordered
// categories of format strings plus bare top-level keys.
type Config struct {
	Categories []Category
	Globals    map[string]string
}

// Category groups format strings under a name such as "formatting" or "math".
type Category struct {
	Name      string
	Templates map[string]string
}

// Info holds template set metadata.
type Info struct {
	Name        string
	Description string
	Author      string
	Version     string
}

// Metadata keys read from the top level of a template configuration.
const (
	infoName        = "name"
	infoDescription = "description"
	infoAuthor      = "author"
	infoVersion     = "version"
)

type compiledCategory struct {
	name      string
	templates map[string]*format
}

// Store resolves (category, key) pairs to format strings and applies them.
// It performs no I/O and is read-only after New, so a single Store can be
// shared by concurrent renders.
type Store struct {
	categories []compiledCategory
	byName     map[string]int
	globals    map[string]*format
	info       Info
}

// New compiles every format string in cfg. Category templates with invalid
// syntax fail construction. Top-level entries may be metadata rather than
// templates, so their syntax errors surface only when they are applied.
func New(cfg Config) (*Store, error) {
	s := &Store{
		categories: make([]compiledCategory, 0, len(cfg.Categories)),
		byName:     make(map[string]int, len(cfg.Categories)),
		globals:    make(map[string]*format, len(cfg.Globals)),
	}

	for _, cat := range cfg.Categories {
		if _, dup := s.byName[cat.Name]; dup {
			continue
		}
		cc := compiledCategory{name: cat.Name, templates: make(map[string]*format, len(cat.Templates))}
		for key, raw := range cat.Templates {
			f, err := compileFormat(raw)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", cat.Name, key, err)
			}
			cc.templates[key] = f
		}
		s.byName[cat.Name] = len(s.categories)
		s.categories = append(s.categories, cc)
	}

	for key, raw := range cfg.Globals {
		f, err := compileFormat(raw)
		if err != nil {
			f = &format{raw: raw, err: fmt.Errorf("%s: %w", key, err)}
		}
		s.globals[key] = f
	}

	s.info = Info{
		Name:        valueOr(cfg.Globals, infoName, "Unknown"),
		Description: valueOr(cfg.Globals, infoDescription, "No description"),
		Author:      valueOr(cfg.Globals, infoAuthor, "Unknown"),
		Version:     valueOr(cfg.Globals, infoVersion, "1.0"),
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for built-in configurations.
func MustNew(cfg Config) *Store {
	s, err := New(cfg)
	if err != nil {
		panic("templates: " + err.Error())
	}
	return s
}

func valueOr(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return def
}

// Info returns the template set metadata.
func (s *Store) Info() Info {
	return s.info
}

// Lookup resolves key inside category, then key at the top level. When
// neither exists it returns the "content" binding unformatted, or "".
func (s *Store) Lookup(category, key string, b Bindings) (string, error) {
	if i, ok := s.byName[category]; ok {
		if f, ok := s.categories[i].templates[key]; ok {
			return f.apply(category, key, b)
		}
	}
	if f, ok := s.globals[key]; ok {
		return f.apply("", key, b)
	}
	return fallback(b), nil
}

// LookupAny resolves key in the first category (in declaration order) that
// defines it, then at the top level, with the same fallback as Lookup.
func (s *Store) LookupAny(key string, b Bindings) (string, error) {
	f, category, ok := s.find("", key)
	if !ok {
		return fallback(b), nil
	}
	return f.apply(category, key, b)
}

// Apply resolves and formats the template for a call site.
func (s *Store) Apply(site Site, b Bindings) (string, error) {
	if site.Category != "" {
		return s.Lookup(site.Category, site.Key, b)
	}
	return s.LookupAny(site.Key, b)
}

// Has reports whether any category or the top level defines key.
func (s *Store) Has(key string) bool {
	_, _, ok := s.find("", key)
	return ok
}

// Check verifies that each site's template only references placeholders
// the site declares. Sites without a template are skipped.
func (s *Store) Check(sites ...Site) error {
	var err error
	for _, site := range sites {
		f, category, ok := s.find(site.Category, site.Key)
		if !ok {
			continue
		}
		if f.err != nil {
			err = multierr.Append(err, f.err)
			continue
		}
		for _, p := range f.placeholders {
			if !site.declares(p) {
				err = multierr.Append(err, &BindingError{Category: category, Key: site.Key, Placeholder: p})
			}
		}
	}
	return err
}

// find locates the template for key. With a category it follows Lookup's
// order, without one LookupAny's.
func (s *Store) find(category, key string) (*format, string, bool) {
	if category != "" {
		if i, ok := s.byName[category]; ok {
			if f, ok := s.categories[i].templates[key]; ok {
				return f, category, true
			}
		}
	} else {
		for _, cat := range s.categories {
			if f, ok := cat.templates[key]; ok {
				return f, cat.name, true
			}
		}
	}
	if f, ok := s.globals[key]; ok {
		return f, "", true
	}
	return nil, "", false
}

func fallback(b Bindings) string {
	if v, ok := b["content"]; ok {
		return v
	}
	return ""
}
