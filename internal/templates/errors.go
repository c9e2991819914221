package templates

import (
	"errors"
	"fmt"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateBinding indicates a template references a placeholder
	// the call site does not supply.
	ErrTemplateBinding = errors.New("template binding error")

	// ErrTemplateSyntax indicates a format string with unbalanced braces
	// or an empty placeholder.
	ErrTemplateSyntax = errors.New("template syntax error")

	// ErrTemplateConfig indicates a template configuration with values of
	// the wrong shape (e.g., a list where a format string is expected).
	ErrTemplateConfig = errors.New("invalid template configuration")
)

// BindingError describes a placeholder that could not be bound.
// Category is empty for templates defined at the top level.
type BindingError struct {
	Category    string
	Key         string
	Placeholder string
}

func (e *BindingError) Error() string {
	name := e.Key
	if e.Category != "" {
		name = e.Category + "." + e.Key
	}
	return fmt.Sprintf("%v: %s references {%s}", ErrTemplateBinding, name, e.Placeholder)
}

func (e *BindingError) Unwrap() error {
	return ErrTemplateBinding
}
