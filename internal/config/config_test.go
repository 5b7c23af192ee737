package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err == nil {
		t.Fatal("Load() = nil error, want config not found")
	}
	if !strings.Contains(err.Error(), "config not found") {
		t.Errorf("Load() error = %v", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, DefaultVersion)
	}
	if len(cfg.Exclude) == 0 {
		t.Error("default config should exclude vendor directories")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	title := "Calculator Docs"
	output := "docs/api.md"
	in := Config{
		Version: 1,
		Include: []string{"src/**"},
		Exclude: []string{"src/generated/**"},
		Markers: []string{"//!", "//"},
		Render:  &RenderConfig{Title: &title, Output: &output},
	}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out.Include) != 1 || out.Include[0] != "src/**" {
		t.Errorf("Include = %v", out.Include)
	}
	if out.Render.GetTitle() != "Calculator Docs" {
		t.Errorf("GetTitle() = %q", out.Render.GetTitle())
	}
	if out.Render.GetOutput() != "docs/api.md" {
		t.Errorf("GetOutput() = %q", out.Render.GetOutput())
	}
}

func TestLoadDefaultsZeroVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Version = %d, want %d", cfg.Version, DefaultVersion)
	}
}

func TestValidate(t *testing.T) {
	empty := ""
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"default", Default(), ""},
		{"bad version", Config{Version: 2}, "unsupported config version"},
		{"bad glob", Config{Version: 1, Include: []string{"[unclosed"}}, "invalid glob"},
		{"empty marker", Config{Version: 1, Markers: []string{""}}, "markers must not contain empty strings"},
		{"empty render title", Config{Version: 1, Render: &RenderConfig{Title: &empty}}, "render title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestRenderConfigDefaults(t *testing.T) {
	var rc *RenderConfig
	if rc.GetTitle() != DefaultRenderTitle {
		t.Errorf("GetTitle() = %q", rc.GetTitle())
	}
	if rc.GetOutput() != DefaultRenderOutput {
		t.Errorf("GetOutput() = %q", rc.GetOutput())
	}
}
