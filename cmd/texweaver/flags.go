package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags select and check the template set.
type templateFlags struct {
	name      string
	file      string
	assetPath string
	strict    bool
}

// documentFlags holds the metadata bound to the document templates.
type documentFlags struct {
	title  string
	author string
	date   string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	json     bool
	template templateFlags
	document documentFlags
}

// templatesFlags holds flags for the templates command.
type templatesFlags struct {
	common    commonFlags
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addTemplateFlags adds template selection flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.name, "template", "t", "", "template set name (default \"default\")")
	fs.StringVar(&f.file, "template-file", "", "template set YAML file")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom template sets")
	fs.BoolVar(&f.strict, "strict", false, "fail on templates with unknown placeholders")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.date, "date", "", "document date: \"auto\", \"auto:FORMAT\", \"today\" or literal")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (\"-\" = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.json, "json", false, "also write the document structure as JSON")

	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.template)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTemplatesFlags parses templates command flags.
func parseTemplatesFlags(args []string, usage io.Writer) (*templatesFlags, []string, error) {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &templatesFlags{}

	fs.StringVar(&f.assetPath, "asset-path", "", "directory of custom template sets")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTemplatesUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
