package main

import (
	"errors"
	"os"

	"github.com/alnah/go-texweaver"
	"github.com/alnah/go-texweaver/internal/config"
)

// Exit codes for the texweaver CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, texweaver.ErrTemplateNotFound) ||
		errors.Is(err, texweaver.ErrInvalidTemplateName) ||
		errors.Is(err, texweaver.ErrInvalidAssetPath) ||
		errors.Is(err, texweaver.ErrTemplateSyntax) ||
		errors.Is(err, texweaver.ErrTemplateConfig) ||
		errors.Is(err, texweaver.ErrTemplateBinding) ||
		errors.Is(err, texweaver.ErrInvalidDateFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, texweaver.ErrTemplateFile) ||
		errors.Is(err, texweaver.ErrInputTooLarge) {
		return ExitIO
	}

	return ExitGeneral
}
