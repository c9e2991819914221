package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/alnah/go-texweaver"
	"github.com/alnah/go-texweaver/internal/fileutil"
)

// runTemplatesCmd handles "templates [list|info|check]".
func runTemplatesCmd(args []string, env *Environment) int {
	flags, positional, err := parseTemplatesFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\nRun 'texweaver help templates' for usage.\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}
	assetPath := flags.assetPath
	if assetPath == "" {
		assetPath = cfg.Template.AssetPath
	}

	sub := "list"
	if len(positional) > 0 {
		sub, positional = positional[0], positional[1:]
	}

	switch sub {
	case "list":
		err = listTemplates(env.Stdout, assetPath)
	case "info", "check":
		if len(positional) != 1 {
			err = fmt.Errorf("%w: templates %s takes exactly one template name or file", ErrUsage, sub)
			break
		}
		if sub == "info" {
			err = showTemplateInfo(env.Stdout, positional[0], assetPath)
		} else {
			err = checkTemplates(env.Stdout, positional[0], assetPath)
		}
	default:
		err = fmt.Errorf("%w: unknown templates subcommand %q", ErrUsage, sub)
	}

	if err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// listTemplates prints each template set with its description. Sets that
// fail to load are still listed; their errors are returned together.
func listTemplates(w io.Writer, assetPath string) error {
	names, err := texweaver.ListTemplates(assetPath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var errs error
	for _, name := range names {
		info, err := texweaver.LoadTemplateInfo(name, assetPath)
		if err != nil {
			errs = multierr.Append(errs, err)
			fmt.Fprintf(tw, "%s\t(invalid)\n", name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, info.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return errs
}

// showTemplateInfo prints a template set's descriptive metadata.
func showTemplateInfo(w io.Writer, ref, assetPath string) error {
	conv, err := templateConverter(ref, assetPath)
	if err != nil {
		return err
	}

	info := conv.TemplateInfo()
	fmt.Fprintf(w, "Name:        %s\n", info.Name)
	fmt.Fprintf(w, "Description: %s\n", info.Description)
	fmt.Fprintf(w, "Author:      %s\n", info.Author)
	fmt.Fprintf(w, "Version:     %s\n", info.Version)
	return nil
}

// checkTemplates lists every template that references a placeholder its
// call site does not provide.
func checkTemplates(w io.Writer, ref, assetPath string) error {
	conv, err := templateConverter(ref, assetPath)
	if err != nil {
		return err
	}

	if err := conv.Check(); err != nil {
		problems := multierr.Errors(err)
		for _, p := range problems {
			fmt.Fprintf(w, "  %v\n", p)
		}
		return fmt.Errorf("%s: %d unbound placeholder(s): %w", ref, len(problems), texweaver.ErrTemplateBinding)
	}

	fmt.Fprintf(w, "%s: ok\n", ref)
	return nil
}

// templateConverter loads a set by file when ref looks like a path or a
// YAML file, else by name.
func templateConverter(ref, assetPath string) (*texweaver.Converter, error) {
	if fileutil.IsFilePath(ref) || isYAMLFile(ref) {
		return texweaver.NewConverter(texweaver.WithTemplateFile(ref))
	}
	return texweaver.NewConverter(texweaver.WithTemplate(ref), texweaver.WithAssetPath(assetPath))
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
