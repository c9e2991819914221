package main

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-texweaver/internal/config"
)

// resolveLogLevel picks the console level. Flags win over the config file:
// -q keeps errors only, -v enables debug output.
func resolveLogLevel(f commonFlags, cfg *config.Config) string {
	switch {
	case f.verbose:
		return config.LogDebug
	case f.quiet:
		return config.LogNone
	case cfg != nil && cfg.Log.Level != "":
		return strings.ToLower(cfg.Log.Level)
	default:
		return config.LogNormal
	}
}

// newLogger builds a console logger writing to w. Level "none" still
// reports errors; stdout is left to converted output.
func newLogger(w io.Writer, level string) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	min := zapcore.ErrorLevel
	switch level {
	case config.LogNormal:
		min = zapcore.InfoLevel
	case config.LogDebug:
		min = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), min)
	return zap.New(core)
}
