package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Convert command flag parsing
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		args := []string{
			"-o", "out", "-w", "4", "--json",
			"-c", "work", "-v",
			"-t", "book", "--template-file", "set.yaml", "--asset-path", "tpl", "--strict",
			"--title", "T", "--author", "A", "--date", "auto:iso",
			"doc.md", "doc.tex",
		}
		var usage bytes.Buffer
		f, positional, err := parseConvertFlags(args, &usage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := convertFlags{
			common:   commonFlags{config: "work", verbose: true},
			output:   "out",
			workers:  4,
			json:     true,
			template: templateFlags{name: "book", file: "set.yaml", assetPath: "tpl", strict: true},
			document: documentFlags{title: "T", author: "A", date: "auto:iso"},
		}
		if *f != want {
			t.Errorf("flags = %+v, want %+v", *f, want)
		}
		if strings.Join(positional, ",") != "doc.md,doc.tex" {
			t.Errorf("positional = %v, want [doc.md doc.tex]", positional)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		f, positional, err := parseConvertFlags([]string{"doc.md"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *f != (convertFlags{}) {
			t.Errorf("flags = %+v, want zero value", *f)
		}
		if len(positional) != 1 {
			t.Errorf("positional = %v, want [doc.md]", positional)
		}
	})

	t.Run("stdin marker is positional", func(t *testing.T) {
		t.Parallel()

		_, positional, err := parseConvertFlags([]string{"-", "-q"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(positional) != 1 || positional[0] != "-" {
			t.Errorf("positional = %v, want [-]", positional)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--nope"}, &bytes.Buffer{})
		if err == nil || !strings.Contains(err.Error(), "nope") {
			t.Fatalf("error = %v, want unknown flag error", err)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		var usage bytes.Buffer
		_, _, err := parseConvertFlags([]string{"--help"}, &usage)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if !strings.Contains(usage.String(), "Usage: texweaver convert") {
			t.Errorf("usage not printed, got %q", usage.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseTemplatesFlags - Templates command flag parsing
// ---------------------------------------------------------------------------

func TestParseTemplatesFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parseTemplatesFlags([]string{"check", "--asset-path", "tpl", "book"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.assetPath != "tpl" {
		t.Errorf("assetPath = %q, want %q", f.assetPath, "tpl")
	}
	if strings.Join(positional, " ") != "check book" {
		t.Errorf("positional = %v, want [check book]", positional)
	}
}
