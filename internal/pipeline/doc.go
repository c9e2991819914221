// Package pipeline implements the Markdown parsing stage.
//
// This package turns text into a document tree:
//   - Line splitting and per-line preprocessing (trim, HTML comment removal)
//   - Inline scanning into text, bold, italic, code and math spans
//   - Block parsing with a line-oriented state machine
//
// The dialect is deliberately small. Each line is classified on its own,
// in a fixed order: $$ formula fences, ``` code fences, the "---" slide
// break, list items, headings, images and finally paragraphs. There is no
// nesting and no lookahead; a single pass produces the tree.
//
// Rendering is handled separately by the document package, which applies a
// template store to the finished tree.
package pipeline
