package assets

import (
	"errors"
	"slices"
)

// Resolver searches template set sources in order. A directory given with
// --asset-path shadows the built-in sets of the same name; names it does
// not have resolve from the embedded sets.
type Resolver struct {
	sources []Loader // highest priority first; the embedded loader is last
}

// NewResolver returns a Resolver over the embedded sets, preceded by
// customBasePath when it is non-empty. An unusable customBasePath yields
// ErrInvalidBasePath.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{}
	if customBasePath != "" {
		dir, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.sources = append(r.sources, dir)
	}
	r.sources = append(r.sources, NewEmbeddedLoader())
	return r, nil
}

// LoadTemplate returns the first source's copy of name. Only
// ErrTemplateNotFound moves on to the next source; a malformed name or a
// read failure stops the search.
func (r *Resolver) LoadTemplate(name string) ([]byte, error) {
	var err error
	for _, src := range r.sources {
		var data []byte
		data, err = src.LoadTemplate(name)
		if !errors.Is(err, ErrTemplateNotFound) {
			return data, err
		}
	}
	return nil, err
}

// ListTemplates merges the names of every source, sorted and deduplicated.
func (r *Resolver) ListTemplates() ([]string, error) {
	var all []string
	for _, src := range r.sources {
		names, err := src.ListTemplates()
		if err != nil {
			return nil, err
		}
		all = append(all, names...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}

// HasCustomLoader reports whether an asset directory is searched before
// the embedded sets.
func (r *Resolver) HasCustomLoader() bool {
	return len(r.sources) > 1
}

var _ Loader = (*Resolver)(nil)
