package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-texweaver/internal/assets"
	"github.com/alnah/go-texweaver/internal/config"
)

const envPrefix = "TEXWEAVER_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TEXWEAVER_CONFIG: config file name or path
	Template   string // TEXWEAVER_TEMPLATE: template set name
	AssetPath  string // TEXWEAVER_ASSET_PATH: custom template directory
	InputDir   string // TEXWEAVER_INPUT_DIR: default input directory
	OutputDir  string // TEXWEAVER_OUTPUT_DIR: default output directory
	Author     string // TEXWEAVER_AUTHOR: document author
	Date       string // TEXWEAVER_DATE: document date
	LogLevel   string // TEXWEAVER_LOG_LEVEL: none, normal, debug
	Workers    int    // TEXWEAVER_WORKERS: parallel workers
}

// knownEnvVars lists valid TEXWEAVER_* environment variables.
var knownEnvVars = map[string]bool{
	"TEXWEAVER_CONFIG":     true,
	"TEXWEAVER_TEMPLATE":   true,
	"TEXWEAVER_ASSET_PATH": true,
	"TEXWEAVER_INPUT_DIR":  true,
	"TEXWEAVER_OUTPUT_DIR": true,
	"TEXWEAVER_AUTHOR":     true,
	"TEXWEAVER_DATE":       true,
	"TEXWEAVER_LOG_LEVEL":  true,
	"TEXWEAVER_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TEXWEAVER_CONFIG"),
		Template:   os.Getenv("TEXWEAVER_TEMPLATE"),
		AssetPath:  os.Getenv("TEXWEAVER_ASSET_PATH"),
		InputDir:   os.Getenv("TEXWEAVER_INPUT_DIR"),
		OutputDir:  os.Getenv("TEXWEAVER_OUTPUT_DIR"),
		Author:     os.Getenv("TEXWEAVER_AUTHOR"),
		Date:       os.Getenv("TEXWEAVER_DATE"),
		LogLevel:   os.Getenv("TEXWEAVER_LOG_LEVEL"),
	}

	// Invalid values are ignored, like unset ones.
	if workers := os.Getenv("TEXWEAVER_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns TEXWEAVER_* variables that are not recognized,
// which usually means a typo.
func unknownEnvVars() []string {
	var unknown []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs a warning per unrecognized variable.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, name := range unknownEnvVars() {
		logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
	}
}

// applyEnvConfig fills config values the file left empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" && (cfg.Template.Name == "" || cfg.Template.Name == assets.DefaultTemplateName) {
		cfg.Template.Name = env.Template
	}
	if env.AssetPath != "" && cfg.Template.AssetPath == "" {
		cfg.Template.AssetPath = env.AssetPath
	}

	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.Date != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.Date
	}

	if env.LogLevel != "" && (cfg.Log.Level == "" || cfg.Log.Level == config.LogNormal) {
		cfg.Log.Level = env.LogLevel
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
