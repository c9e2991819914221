package templates

import "slices"

// Site is a template call site: where the renderer looks a template up and
// which placeholders it binds. An empty Category means "first category
// that defines Key".
type Site struct {
	Category     string
	Key          string
	Placeholders []string
}

func (s Site) declares(name string) bool {
	return slices.Contains(s.Placeholders, name)
}

// CategoryDocument holds the document skeleton templates.
const CategoryDocument = "document"

var (
	documentPlaceholders = []string{"content", "title", "author", "date"}
	contentPlaceholders  = []string{"content"}
)

// Document skeleton.
var (
	SitePreamble      = Site{Category: CategoryDocument, Key: "preamble", Placeholders: documentPlaceholders}
	SiteBeginDocument = Site{Category: CategoryDocument, Key: "begin_document", Placeholders: documentPlaceholders}
	SiteEndDocument   = Site{Category: CategoryDocument, Key: "end_document", Placeholders: documentPlaceholders}
)

// Inline spans.
var (
	SiteText          = Site{Key: "text", Placeholders: contentPlaceholders}
	SiteBold          = Site{Key: "bold", Placeholders: contentPlaceholders}
	SiteItalic        = Site{Key: "italic", Placeholders: contentPlaceholders}
	SiteInlineCode    = Site{Key: "inline_code", Placeholders: contentPlaceholders}
	SiteInlineFormula = Site{Key: "inline_formula", Placeholders: contentPlaceholders}
)

// Blocks.
var (
	SiteParagraph     = Site{Key: "paragraph", Placeholders: contentPlaceholders}
	SiteBlockFormula  = Site{Key: "block_formula", Placeholders: contentPlaceholders}
	SiteCodeBlock     = Site{Key: "code_block", Placeholders: []string{"code", "lang", "lang_name"}}
	SiteImage         = Site{Key: "image", Placeholders: []string{"src", "alt", "width", "label"}}
	SiteOrderedList   = Site{Key: "ordered_list", Placeholders: []string{"items"}}
	SiteUnorderedList = Site{Key: "unordered_list", Placeholders: []string{"items"}}
	SiteListItem      = Site{Key: "list_item", Placeholders: contentPlaceholders}
	SiteSlideBreak    = Site{Key: "slide_break", Placeholders: contentPlaceholders}
)

// MaxHeadingLevel is the deepest heading with its own template.
const MaxHeadingLevel = 5

var headingSites = [MaxHeadingLevel]Site{
	{Key: "heading1", Placeholders: contentPlaceholders},
	{Key: "heading2", Placeholders: contentPlaceholders},
	{Key: "heading3", Placeholders: contentPlaceholders},
	{Key: "heading4", Placeholders: contentPlaceholders},
	{Key: "heading5", Placeholders: contentPlaceholders},
}

// HeadingSite returns the site for a heading level. Levels outside
// 1..MaxHeadingLevel fall back to the bold site.
func HeadingSite(level int) Site {
	if level < 1 || level > MaxHeadingLevel {
		return SiteBold
	}
	return headingSites[level-1]
}

// Sites returns every call site used by the renderer.
func Sites() []Site {
	sites := []Site{
		SitePreamble, SiteBeginDocument, SiteEndDocument,
		SiteText, SiteBold, SiteItalic, SiteInlineCode, SiteInlineFormula,
		SiteParagraph, SiteBlockFormula, SiteCodeBlock, SiteImage,
		SiteOrderedList, SiteUnorderedList, SiteListItem, SiteSlideBreak,
	}
	return append(sites, headingSites[:]...)
}
