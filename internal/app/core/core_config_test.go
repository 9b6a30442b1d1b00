package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfigGeneratesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8000 {
		t.Errorf("defaults = %s:%d, want 0.0.0.0:8000", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.Debug {
		t.Error("debug should default to false")
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file was not written: %v", err)
	}
}

func TestLoadFileConfigParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  host: \"127.0.0.1\"\n  port: 9001\n  debug: true\nno_colors: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9001 || !cfg.Server.Debug {
		t.Errorf("parsed = %+v", cfg.Server)
	}
	if !cfg.NoColors {
		t.Error("no_colors not parsed")
	}
	if got := cfg.ListenAddr(); got != "127.0.0.1:9001" {
		t.Errorf("ListenAddr() = %q, want %q", got, "127.0.0.1:9001")
	}
}

func TestLoadFileConfigEnvOverrides(t *testing.T) {
	t.Setenv("HOST", "10.0.0.5")
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if cfg.Server.Host != "10.0.0.5" {
		t.Errorf("HOST override ignored: %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("PORT override ignored: %d", cfg.Server.Port)
	}
	if !cfg.Server.Debug {
		t.Error("DEBUG override ignored")
	}
}

func TestLoadFileConfigBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("invalid PORT changed the port to %d", cfg.Server.Port)
	}
}

func TestHasSiteScope(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"inurl:id= {{site}}", true},
		{"site:pastebin.com {{domain}}", false},
		{"{{site}} intext:{{domain}}", true},
	}
	for _, tt := range tests {
		tmpl := DorkTemplate{Pattern: tt.pattern}
		if got := tmpl.HasSiteScope(); got != tt.want {
			t.Errorf("HasSiteScope(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}
