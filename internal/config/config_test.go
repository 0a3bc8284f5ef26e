package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-inliner/internal/config"
)

// writeConfig writes content to a temp config file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inliner.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoad - Config parsing
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    config.Config
	}{
		{
			name:    "all fields",
			content: "target: build\nentry: main.html\ndryRun: true\n",
			want:    config.Config{Target: "build", Entry: "main.html", DryRun: true},
		},
		{
			name:    "partial fields leave zero values",
			content: "target: public\n",
			want:    config.Config{Target: "public"},
		},
		{
			name:    "empty file",
			content: "",
			want:    config.Config{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)

			got, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("Load() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "target: [unclosed\n")

	_, err := config.Load(path)
	if !errors.Is(err, config.ErrConfigParse) {
		t.Errorf("Load() error = %v, want ErrConfigParse", err)
	}
}
