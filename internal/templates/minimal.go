package templates

// MinimalConfig is the last-resort template set, used when no template
// file can be loaded. It has no document category, so the renderer's
// built-in preamble applies.
func MinimalConfig() Config {
	return Config{
		Globals: map[string]string{
			infoName:        "Minimal Fallback",
			infoDescription: "Fallback configuration",
		},
		Categories: []Category{
			{Name: "formatting", Templates: map[string]string{
				"text":      "{content}",
				"bold":      `\textbf{{{content}}}`,
				"italic":    `\textit{{{content}}}`,
				"paragraph": "{content}\n",
				"heading1":  "\\section{{{content}}}\n",
				"heading2":  "\\subsection{{{content}}}\n",
				"heading3":  "\\subsubsection{{{content}}}\n",
			}},
			{Name: "math", Templates: map[string]string{
				"inline_formula": "${content}$",
				"block_formula":  "\\begin{{equation}}\n{content}\n\\end{{equation}}\n",
			}},
			{Name: "lists", Templates: map[string]string{
				"ordered_list":   "\\begin{{enumerate}}\n{items}\n\\end{{enumerate}}\n",
				"unordered_list": "\\begin{{itemize}}\n{items}\n\\end{{itemize}}\n",
				"list_item":      `  \item {content}`,
			}},
			{Name: "code", Templates: map[string]string{
				"inline_code": `\texttt{{{content}}}`,
				"code_block":  "\\begin{{verbatim}}\n{code}\n\\end{{verbatim}}\n",
			}},
			{Name: "media", Templates: map[string]string{
				"image": `\includegraphics{{{src}}}`,
			}},
		},
	}
}
