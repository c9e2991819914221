package document_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-texweaver/internal/document"
	"github.com/alnah/go-texweaver/internal/templates"
)

func newStore(t *testing.T, document map[string]string) *templates.Store {
	t.Helper()

	cfg := templates.Config{
		Categories: []templates.Category{
			{Name: "formatting", Templates: map[string]string{
				"text":      "{content}",
				"bold":      `\textbf{{{content}}}`,
				"italic":    `\textit{{{content}}}`,
				"paragraph": "{content}",
				"heading1":  `\section{{{content}}}`,
			}},
			{Name: "math", Templates: map[string]string{
				"inline_formula": "${content}$",
				"block_formula":  "\\[\n{content}\n\\]",
			}},
			{Name: "code", Templates: map[string]string{
				"inline_code": `\texttt{{{content}}}`,
				"code_block":  "\\begin{{lstlisting}}[language={lang}]\n{code}\n\\end{{lstlisting}}",
			}},
			{Name: "lists", Templates: map[string]string{
				"unordered_list": "\\begin{{itemize}}\n{items}\n\\end{{itemize}}",
				"list_item":      `\item {content}`,
			}},
			{Name: "media", Templates: map[string]string{
				"image": `\includegraphics[width={width}\textwidth]{{{src}}}\caption{{{alt}}}\label{{fig:{label}}}`,
			}},
			{Name: "presentation", Templates: map[string]string{
				"slide_break": "% slide",
			}},
		},
	}
	if document != nil {
		cfg.Categories = append(cfg.Categories, templates.Category{Name: "document", Templates: document})
	}

	s, err := templates.New(cfg)
	if err != nil {
		t.Fatalf("templates.New() error: %v", err)
	}
	return s
}

func paragraph(spans ...document.Node) *document.Paragraph {
	return &document.Paragraph{Content: &document.Content{Components: spans}}
}

func codeBlock(lang string, lines ...string) *document.CodeBlock {
	cb := document.NewCodeBlock(lang)
	for _, l := range lines {
		cb.AddCode(l)
	}
	return cb
}

// ---------------------------------------------------------------------------
// TestRender_Spans - Escaping rules per span type
// ---------------------------------------------------------------------------

func TestRender_Spans(t *testing.T) {
	t.Parallel()

	store := newStore(t, nil)

	tests := []struct {
		name string
		node document.Node
		want string
	}{
		{name: "text escapes underscore", node: document.NewText("a_b"), want: `a\_b`},
		{name: "bold escapes underscore", node: document.NewInlineBold("x_y"), want: `\textbf{x\_y}`},
		{name: "italic", node: document.NewInlineItalic("it"), want: `\textit{it}`},
		{name: "inline code escapes underscore", node: document.NewInlineCode("snake_case"), want: `\texttt{snake\_case}`},
		{name: "inline formula keeps underscore", node: document.NewInlineFormula("a_b"), want: "$a_b$"},
		{name: "formula block is raw", node: &document.FormulaBlock{Text: "x_1\ny_2"}, want: "\\[\nx_1\ny_2\n\\]"},
		{
			name: "paragraph concatenates spans",
			node: paragraph(document.NewText("a "), document.NewInlineBold("b"), document.NewText(" c")),
			want: `a \textbf{b} c`,
		},
		{
			name: "heading level 1",
			node: &document.Heading{Title: &document.Content{Components: []document.Node{document.NewText("Intro")}}, Level: 1},
			want: `\section{Intro}`,
		},
		{
			name: "heading beyond level 5 renders bold",
			node: &document.Heading{Title: &document.Content{Components: []document.Node{document.NewText("Deep")}}, Level: 6},
			want: `\textbf{Deep}`,
		},
		{
			name: "heading without template falls back to content",
			node: &document.Heading{Title: &document.Content{Components: []document.Node{document.NewText("Two")}}, Level: 2},
			want: "Two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.node.Render(store)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRender_Blocks - Code, lists, images
// ---------------------------------------------------------------------------

func TestRender_CodeBlockVerbatim(t *testing.T) {
	t.Parallel()

	got, err := codeBlock("python", "def f():", "    pass_through()").Render(newStore(t, nil))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "\\begin{lstlisting}[language=python]\ndef f():\n    pass_through()\n\\end{lstlisting}"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNewCodeBlock_DefaultLang(t *testing.T) {
	t.Parallel()

	if got := document.NewCodeBlock("").Lang; got != document.DefaultLang {
		t.Errorf("Lang = %q, want %q", got, document.DefaultLang)
	}
}

func TestRender_List(t *testing.T) {
	t.Parallel()

	list := &document.UnorderedList{}
	for _, s := range []string{"one", "two"} {
		item := &document.ListItem{}
		item.AddComponent(&document.Content{Components: []document.Node{document.NewText(s)}})
		list.AddItem(item)
	}

	got, err := list.Render(newStore(t, nil))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "\\begin{itemize}\n\\item one\n\\item two\n\\end{itemize}"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Image(t *testing.T) {
	t.Parallel()

	img := &document.Image{
		Path:    "fig.png",
		Caption: &document.Content{Components: []document.Node{document.NewText("My Cool Diagram")}},
	}
	got, err := img.Render(newStore(t, nil))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := `\includegraphics[width=0.8\textwidth]{fig.png}\caption{My Cool Diagram}\label{fig:my_cool_diagram}`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestImageLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		caption string
		want    string
	}{
		{caption: "My Cool Diagram!!!", want: "my_cool_diagram!!!"},
		{caption: "A Very Long Caption Here", want: "a_very_long_caption_"},
		{caption: `\textbf{Bold} Move`, want: "textbfbold_move"},
		{caption: `snake\_case`, want: "snake_case"},
		{caption: "Überblick Ärger", want: "überblick_ärger"},
		{caption: "", want: "image"},
		{caption: "   ", want: "image"},
		{caption: "{}", want: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			t.Parallel()

			if got := document.ImageLabel(tt.caption); got != tt.want {
				t.Errorf("ImageLabel(%q) = %q, want %q", tt.caption, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Render - Skeleton, flat and presentation output
// ---------------------------------------------------------------------------

func TestDocument_Render_Flat(t *testing.T) {
	t.Parallel()

	doc := &document.Document{}
	doc.AddComponent(paragraph(document.NewText("a_b")))
	doc.AddComponent(&document.SlideBreak{})
	doc.AddComponent(paragraph(document.NewInlineFormula("a_b")))

	got, err := doc.Render(newStore(t, nil))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := document.DefaultPreamble + "\n" + document.DefaultBeginDocument + "\n" +
		"a\\_b\n% slide\n$a_b$" + "\n" + document.DefaultEndDocument
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestDocument_Render_Presentation(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]string{"preamble": `\documentclass{{Beamer}}`})

	doc := &document.Document{}
	doc.AddComponent(paragraph(document.NewText("one")))
	doc.AddComponent(&document.SlideBreak{})
	doc.AddComponent(paragraph(document.NewText("code:")))
	doc.AddComponent(codeBlock("py", "x=1"))

	got, err := doc.Render(store)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	content := strings.Join([]string{
		`\begin{frame}`,
		"one",
		"\\end{frame}\n",
		`\begin{frame}[fragile]`,
		"code:",
		"\\begin{lstlisting}[language=py]\nx=1\n\\end{lstlisting}",
		`\end{frame}`,
	}, "\n")
	want := `\documentclass{Beamer}` + "\n" + document.DefaultBeginDocument + "\n" + content + "\n" + document.DefaultEndDocument
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if n := strings.Count(got, `\begin{frame}`); n != 2 {
		t.Errorf("got %d frame openings, want 2", n)
	}
	if n := strings.Count(got, `\end{frame}`); n != 2 {
		t.Errorf("got %d frame closings, want 2", n)
	}
}

func TestDocument_Render_PresentationFragileFirstFrame(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]string{"preamble": `\documentclass{{beamer}}`})

	doc := &document.Document{}
	doc.AddComponent(codeBlock("go", "x := 1"))
	doc.AddComponent(&document.SlideBreak{})
	doc.AddComponent(paragraph(document.NewText("plain")))

	got, err := doc.Render(store)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, "\\begin{frame}[fragile]\n\\begin{lstlisting}") {
		t.Errorf("first frame should be fragile:\n%s", got)
	}
	if strings.Count(got, "[fragile]") != 1 {
		t.Errorf("only the first frame should be fragile:\n%s", got)
	}
}

func TestDocument_Render_EmptyPresentation(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]string{"preamble": "beamer", "begin_document": "B", "end_document": "E"})

	got, err := (&document.Document{}).Render(store)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != "beamer\nB\n\nE" {
		t.Errorf("Render() = %q, want %q", got, "beamer\nB\n\nE")
	}
}

func TestDocument_RenderWith_Metadata(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]string{
		"preamble": `\title{{{title}}}\author{{{author}}}\date{{{date}}}`,
	})

	got, err := (&document.Document{}).RenderWith(store, document.Metadata{
		Title:  "On my_var",
		Author: "Ada",
		Date:   "2024-01-02",
	})
	if err != nil {
		t.Fatalf("RenderWith() error: %v", err)
	}
	if !strings.HasPrefix(got, `\title{On my\_var}\author{Ada}\date{2024-01-02}`) {
		t.Errorf("RenderWith() = %q", got)
	}
}

func TestDocument_Render_BindingErrorAborts(t *testing.T) {
	t.Parallel()

	store, err := templates.New(templates.Config{Globals: map[string]string{"paragraph": "{content}{missing}"}})
	if err != nil {
		t.Fatalf("templates.New() error: %v", err)
	}

	doc := &document.Document{}
	doc.AddComponent(paragraph(document.NewText("x")))

	got, err := doc.Render(store)
	if !errors.Is(err, templates.ErrTemplateBinding) {
		t.Fatalf("Render() error = %v, want ErrTemplateBinding", err)
	}
	if got != "" {
		t.Errorf("Render() output = %q, want empty on error", got)
	}
}

func TestDocument_Render_Idempotent(t *testing.T) {
	t.Parallel()

	store := newStore(t, map[string]string{"preamble": "beamer"})
	doc := &document.Document{}
	doc.AddComponent(paragraph(document.NewText("a")))
	doc.AddComponent(&document.SlideBreak{})
	doc.AddComponent(codeBlock("", "b"))

	first, err := doc.Render(store)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := doc.Render(store)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestIsPresentation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preamble string
		want     bool
	}{
		{`\documentclass{beamer}`, true},
		{`\documentclass[12pt]{BEAMER}`, true},
		{`\documentclass{article}`, false},
	}
	for _, tt := range tests {
		if got := document.IsPresentation(tt.preamble); got != tt.want {
			t.Errorf("IsPresentation(%q) = %v, want %v", tt.preamble, got, tt.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want string
	}{
		{lang: "go", want: "Go"},
		{lang: "python", want: "Python"},
		{lang: "no-such-language-tag", want: "no-such-language-tag"},
	}
	for _, tt := range tests {
		if got := document.LanguageName(tt.lang); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
