package document

import "github.com/alecthomas/chroma/v2/lexers"

// LanguageName returns the display name of a fence language tag as known
// to chroma ("py" gives "Python"). Unknown tags are returned unchanged.
func LanguageName(lang string) string {
	if l := lexers.Get(lang); l != nil {
		if cfg := l.Config(); cfg != nil && cfg.Name != "" {
			return cfg.Name
		}
	}
	return lang
}
