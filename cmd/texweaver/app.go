package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/alnah/go-texweaver/internal/fileutil"
)

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "templates":
		return runTemplatesCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "texweaver %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if looksLikeInput(cmd) {
		return runConvertCmd(args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// looksLikeInput reports whether the first argument starts a convert
// invocation: a flag, stdin, a Markdown file or a directory.
func looksLikeInput(arg string) bool {
	if arg == stdio || (len(arg) > 1 && arg[0] == '-') || fileutil.IsMarkdown(arg) {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

// setMaxProcs sizes GOMAXPROCS to the container CPU quota. Its report
// goes to the debug log. The error is ignored: maxprocs.Set only fails
// on an invalid GOMAXPROCS, and the runtime default then applies.
func setMaxProcs(logger *zap.Logger) {
	sugar := logger.Sugar()
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		sugar.Debugf(format, args...)
	}))
}
