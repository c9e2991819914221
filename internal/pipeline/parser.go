package pipeline

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-texweaver/internal/document"
)

// Block-level patterns, matched against preprocessed lines.
var (
	codeFenceLang = regexp.MustCompile(`^` + "```" + `([\p{L}\p{N}_]+)`)
	unorderedItem = regexp.MustCompile(`^[-+*]\s`)
	orderedItem   = regexp.MustCompile(`^\d+\.\s`)
	unorderedMark = regexp.MustCompile(`^[-+*]\s+`)
	orderedMark   = regexp.MustCompile(`^\d+\.\s+`)
	headingLine   = regexp.MustCompile(`^(#+)\s+(.*)`)
	imageLine     = regexp.MustCompile(`^!\[([^\]]+)\]\(([^)]+)\)`)
)

const (
	formulaFence = "$$"
	codeFence    = "```"
	slideBreak   = "---"
)

type listKind int

const (
	listNone listKind = iota
	listOrdered
	listUnordered
)

// BlockKind names a fenced block type.
type BlockKind string

const (
	BlockCode    BlockKind = "code"
	BlockFormula BlockKind = "formula"
)

// DroppedBlock is a fenced block still open at end of input. Such blocks
// are not added to the document.
type DroppedBlock struct {
	Kind      BlockKind
	StartLine int // 1-based line of the opening fence
	Lines     []string
}

// Parser turns Markdown lines into a document, one line at a time.
// A Parser is not safe for concurrent use; create one per document.
type Parser struct {
	logger *zap.Logger
	doc    *document.Document

	line      int
	code      *document.CodeBlock // non-nil while a code block is open
	codeAt    int
	formula   []string
	inFormula bool
	formulaAt int
	listKind  listKind
	ordered   *document.OrderedList
	unordered *document.UnorderedList
	dropped   []DroppedBlock
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets the logger used for parse warnings.
func WithLogger(l *zap.Logger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser returns a parser with an empty document.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.Reset()
	return p
}

// Parse is a shortcut for NewParser().Parse(text).
func Parse(text string) *document.Document {
	return NewParser().Parse(text)
}

// Reset discards the current document and parse state.
func (p *Parser) Reset() {
	*p = Parser{logger: p.logger, doc: &document.Document{}}
}

// Parse resets the parser, consumes every line of text and returns the
// finished document.
func (p *Parser) Parse(text string) *document.Document {
	p.Reset()
	for _, line := range SplitLines(text) {
		p.ParseLine(line)
	}
	p.Finish()
	return p.doc
}

// Document returns the document built so far.
func (p *Parser) Document() *document.Document {
	return p.doc
}

// Dropped returns the blocks discarded by Finish because they were never
// closed.
func (p *Parser) Dropped() []DroppedBlock {
	return p.dropped
}

// Finish ends the input. An open code or formula block is discarded,
// recorded in Dropped and logged.
func (p *Parser) Finish() {
	if p.inFormula {
		p.drop(BlockFormula, p.formulaAt, p.formula)
		p.formula = nil
		p.inFormula = false
	}
	if p.code != nil {
		p.drop(BlockCode, p.codeAt, p.code.Code)
		p.code = nil
	}
	p.listKind = listNone
}

func (p *Parser) drop(kind BlockKind, at int, lines []string) {
	p.dropped = append(p.dropped, DroppedBlock{
		Kind:      kind,
		StartLine: at,
		Lines:     append([]string(nil), lines...),
	})
	p.logger.Warn("unterminated block dropped",
		zap.String("kind", string(kind)),
		zap.Int("line", at),
		zap.Int("lines", len(lines)))
}

// ParseLine consumes one line, without its terminator.
func (p *Parser) ParseLine(line string) {
	p.line++

	// Formula fences are checked first, even inside code blocks. The code
	// block stays open and resumes after the formula closes.
	if strings.HasPrefix(line, formulaFence) {
		p.toggleFormula(line)
		return
	}
	if p.inFormula {
		p.formula = append(p.formula, line)
		return
	}

	if strings.HasPrefix(line, codeFence) {
		p.toggleCode(line)
		return
	}
	if p.code != nil {
		p.code.AddCode(line)
		return
	}

	line = preprocessLine(line)

	if line == slideBreak {
		p.listKind = listNone
		p.doc.AddComponent(&document.SlideBreak{})
		return
	}

	if unorderedItem.MatchString(line) {
		if p.listKind != listUnordered {
			p.listKind = listUnordered
			p.unordered = &document.UnorderedList{}
			p.doc.AddComponent(p.unordered)
		}
		p.unordered.AddItem(listItem(unorderedMark.ReplaceAllString(line, "")))
		return
	}

	if orderedItem.MatchString(line) {
		if p.listKind != listOrdered {
			p.listKind = listOrdered
			p.ordered = &document.OrderedList{}
			p.doc.AddComponent(p.ordered)
		}
		p.ordered.AddItem(listItem(orderedMark.ReplaceAllString(line, "")))
		return
	}

	p.listKind = listNone

	if m := headingLine.FindStringSubmatch(line); m != nil {
		p.doc.AddComponent(&document.Heading{Title: ScanInline(m[2]), Level: len(m[1])})
		return
	}

	if m := imageLine.FindStringSubmatch(line); m != nil {
		p.doc.AddComponent(&document.Image{Path: m[2], Caption: ScanInline(m[1])})
		return
	}

	if content := ScanInline(line); content.Len() > 0 {
		p.doc.AddComponent(&document.Paragraph{Content: content})
	}
}

// toggleFormula opens or closes a $$ block. Text after an opening fence
// becomes the first line; text after a closing fence is ignored.
func (p *Parser) toggleFormula(line string) {
	if p.inFormula {
		p.doc.AddComponent(&document.FormulaBlock{Text: strings.Join(p.formula, "\n")})
		p.formula = nil
		p.inFormula = false
		return
	}

	p.inFormula = true
	p.formulaAt = p.line
	p.formula = nil
	if rest := strings.TrimSpace(line[len(formulaFence):]); rest != "" {
		p.formula = append(p.formula, rest)
	}
}

func (p *Parser) toggleCode(line string) {
	if p.code != nil {
		p.doc.AddComponent(p.code)
		p.code = nil
		return
	}

	lang := ""
	if m := codeFenceLang.FindStringSubmatch(line); m != nil {
		lang = m[1]
	}
	p.code = document.NewCodeBlock(lang)
	p.codeAt = p.line
}

func listItem(text string) *document.ListItem {
	item := &document.ListItem{}
	item.AddComponent(ScanInline(strings.TrimSpace(text)))
	return item
}
