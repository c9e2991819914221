package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texweaver.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Template.Name != "default" {
		t.Errorf("Template.Name = %q, want %q", cfg.Template.Name, "default")
	}
	if cfg.Log.Level != LogNormal {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, LogNormal)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value under limit is valid", "12345", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field limits and enumerations
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg: Config{
				Template: TemplateConfig{Name: "academic", Strict: true},
				Document: DocumentConfig{Title: "Notes", Author: "A. Author", Date: "auto:long"},
				Log:      LogConfig{Level: "DEBUG"},
				Workers:  4,
			},
		},
		{
			name:    "document.title too long",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("x", MaxTitleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "document.date too long",
			cfg:     Config{Document: DocumentConfig{Date: strings.Repeat("x", MaxDateLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "template.name too long",
			cfg:     Config{Template: TemplateConfig{Name: strings.Repeat("x", MaxNameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown log level",
			cfg:     Config{Log: LogConfig{Level: "verbose"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `input:
  defaultDir: "notes"
output:
  defaultDir: "build"
template:
  name: book
  assetPath: "./templates"
  strict: true
document:
  title: "Lecture 1"
  author: "Ada"
  date: auto
log:
  level: debug
workers: 2
`)

		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := &Config{
			Input:    InputConfig{DefaultDir: "notes"},
			Output:   OutputConfig{DefaultDir: "build"},
			Template: TemplateConfig{Name: "book", AssetPath: "./templates", Strict: true},
			Document: DocumentConfig{Title: "Lecture 1", Author: "Ada", Date: "auto"},
			Log:      LogConfig{Level: LogDebug},
			Workers:  2,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(writeConfig(t, "workers: 1\n"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Template.Name != "default" {
			t.Errorf("Template.Name = %q, want %q", cfg.Template.Name, "default")
		}
		if cfg.Log.Level != LogNormal {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, LogNormal)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "template: [unclosed"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "template:\n  name: book\nstyle: fancy\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation runs after decoding", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "log:\n  level: loud\n"))
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

// Not parallel: changes the working directory and environment.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	t.Run("found in working directory", func(t *testing.T) {
		if err := os.WriteFile("local.yml", []byte("workers: 3\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("found in user config directory", func(t *testing.T) {
		userDir := filepath.Join(dir, "xdg", AppDir)
		if err := os.MkdirAll(userDir, 0750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(userDir, "shared.yaml"), []byte("workers: 5\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Workers)
		}
	})

	t.Run("not found lists searched paths", func(t *testing.T) {
		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), filepath.Join(AppDir, "missing.yaml")) {
			t.Errorf("error %q should list the user config path", err)
		}
	})
}
