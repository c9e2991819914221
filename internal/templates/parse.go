package templates

import (
	"fmt"

	"github.com/alnah/go-texweaver/internal/yamlutil"
)

// ParseConfig decodes a YAML template file. Top-level mappings become
// categories (in file order), top-level scalars become bare keys.
//
//	name: Academic
//	formatting:
//	  bold: "\\textbf{{{content}}}"
func ParseConfig(data []byte) (Config, error) {
	entries, err := yamlutil.UnmarshalOrdered(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrTemplateConfig, err)
	}

	cfg := Config{Globals: make(map[string]string)}
	for _, e := range entries {
		switch v := e.Value.(type) {
		case []yamlutil.Entry:
			cat := Category{Name: e.Key, Templates: make(map[string]string, len(v))}
			for _, t := range v {
				s, err := templateString(t.Value)
				if err != nil {
					return Config{}, fmt.Errorf("%w: %s.%s: %v", ErrTemplateConfig, e.Key, t.Key, err)
				}
				cat.Templates[t.Key] = s
			}
			cfg.Categories = append(cfg.Categories, cat)
		case string:
			cfg.Globals[e.Key] = v
		case nil, []any:
			// Lists (e.g. tags) and empty values carry no template.
		default:
			cfg.Globals[e.Key] = fmt.Sprint(v)
		}
	}

	return cfg, nil
}

func templateString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected a format string, got %T", v)
	}
}
