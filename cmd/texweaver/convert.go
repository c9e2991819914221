package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alnah/go-texweaver"
	"github.com/alnah/go-texweaver/internal/config"
	"github.com/alnah/go-texweaver/internal/fileutil"
	"github.com/alnah/go-texweaver/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// stdio stands for stdin as input and stdout as output.
const stdio = "-"

// runConvertCmd parses flags, loads config and logging, then converts.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "Error: %v\nRun 'texweaver help convert' for usage.\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}

	logger := newLogger(env.Stderr, resolveLogLevel(flags.common, cfg))
	defer func() { _ = logger.Sync() }()

	warnUnknownEnvVars(logger)
	setMaxProcs(logger)

	ctx, stop := signalContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, cfg, env, logger); err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// loadConfig loads the config named by the flag, else by TEXWEAVER_CONFIG,
// else the defaults, then layers the environment on top.
func loadConfig(name string) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				err = withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI flags take precedence.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// A name on the command line beats a file from the config.
	if flags.template.name != "" {
		cfg.Template.Name = flags.template.name
		cfg.Template.File = ""
	}
	if flags.template.file != "" {
		cfg.Template.File = flags.template.file
	}
	if flags.template.assetPath != "" {
		cfg.Template.AssetPath = flags.template.assetPath
	}
	if flags.template.strict {
		cfg.Template.Strict = true
	}

	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}

	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, cfg *config.Config, env *Environment, logger *zap.Logger) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	inputPath, output, err := resolveIO(positional, flags.output, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}
	if flags.json && files[0].OutputPath == stdio {
		return fmt.Errorf("%w: --json needs an output file", ErrUsage)
	}

	conv, err := newConverter(cfg, env, logger)
	if err != nil {
		return err
	}

	params := &conversionParams{
		meta: texweaver.Metadata{
			Title:  cfg.Document.Title,
			Author: cfg.Document.Author,
			Date:   cfg.Document.Date,
		},
		json:   flags.json,
		stdin:  env.Stdin,
		stdout: env.Stdout,
	}

	workers := resolvePoolSize(cfg.Workers)
	logger.Debug("starting conversion",
		zap.Int("files", len(files)),
		zap.Int("workers", workers),
		zap.String("template", conv.TemplateInfo().Name))

	results := convertBatch(ctx, conv, files, params, workers)
	summary := reportResults(results, logger)

	if summary.Dropped > 0 && !flags.common.quiet {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForDroppedBlocks(summary.Dropped), "\n"))
	}

	if err := batchErr(results, summary); err != nil {
		if errors.Is(err, texweaver.ErrTemplateBinding) {
			return withHint(err, hints.ForTemplateBinding(templateRef(cfg)))
		}
		return err
	}
	return nil
}

// resolveIO picks the input and output from positional arguments, flags
// and config, in that order.
func resolveIO(positional []string, flagOutput string, cfg *config.Config) (input, output string, err error) {
	switch len(positional) {
	case 0:
		if cfg.Input.DefaultDir == "" {
			return "", "", ErrNoInput
		}
		input = cfg.Input.DefaultDir
	case 1:
		input = positional[0]
	case 2:
		if flagOutput != "" {
			return "", "", fmt.Errorf("%w: output given both as argument and --output", ErrUsage)
		}
		input, output = positional[0], positional[1]
	default:
		return "", "", fmt.Errorf("%w: too many arguments: %s", ErrUsage, strings.Join(positional[2:], " "))
	}

	if output == "" {
		output = flagOutput
	}
	if output == "" && input != stdio {
		output = cfg.Output.DefaultDir
	}
	return input, output, nil
}

// newConverter builds the library converter from the merged config.
func newConverter(cfg *config.Config, env *Environment, logger *zap.Logger) (*texweaver.Converter, error) {
	// "auto" dates resolve once per run, so every file agrees.
	now := env.Now()

	opts := []texweaver.Option{
		texweaver.WithLogger(logger.Named("convert")),
		texweaver.WithClock(func() time.Time { return now }),
		texweaver.WithStrictTemplates(cfg.Template.Strict),
		texweaver.WithAssetPath(cfg.Template.AssetPath),
	}
	if cfg.Template.File != "" {
		opts = append(opts, texweaver.WithTemplateFile(cfg.Template.File))
	} else {
		opts = append(opts, texweaver.WithTemplate(cfg.Template.Name))
	}

	conv, err := texweaver.NewConverter(opts...)
	if err != nil {
		switch {
		case errors.Is(err, texweaver.ErrTemplateNotFound):
			names, _ := texweaver.ListTemplates(cfg.Template.AssetPath)
			err = withHint(err, hints.ForTemplateNotFound(names))
		case errors.Is(err, texweaver.ErrTemplateBinding):
			err = withHint(err, hints.ForTemplateBinding(templateRef(cfg)))
		}
		return nil, err
	}
	return conv, nil
}

// templateRef names the selected template set the way the templates
// command accepts it.
func templateRef(cfg *config.Config) string {
	if cfg.Template.File != "" {
		return cfg.Template.File
	}
	return cfg.Template.Name
}

// withHint appends a hint to err, keeping it wrapped.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// reportError prints a fatal error to stderr.
func reportError(env *Environment, err error) {
	fmt.Fprintf(env.Stderr, "Error: %v\n", err)
}
