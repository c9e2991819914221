// Package templates holds the read-only template store used to render
// LaTeX.
//
// # Format Strings
//
// Templates are format strings with named placeholders:
//
//	\section{{{content}}}
//
// "{content}" is replaced by the binding named content; "{{" and "}}" are
// literal braces. Bindings not referenced by a template are ignored, a
// referenced placeholder without a binding is an ErrTemplateBinding.
//
// # Resolution
//
// Templates live in categories ("formatting", "math", "document", ...).
// Lookup tries the exact (category, key) pair, then a bare top-level key.
// LookupAny scans categories in declaration order. Both fall back to the
// raw "content" binding, or the empty string when none was supplied.
//
// # Call Sites
//
// Every place the renderer applies a template is a Site declaring the
// placeholders it binds. Store.Check reports templates that reference
// anything else, so template authors get errors when a set is loaded
// rather than halfway through a render.
package templates
