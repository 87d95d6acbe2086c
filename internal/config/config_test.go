package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/teetime/internal/constants"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.APIBaseURL != constants.DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if !strings.HasSuffix(cfg.ConfigDir, constants.AppName) {
		t.Errorf("ConfigDir = %q, want suffix %q", cfg.ConfigDir, constants.AppName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"https", func(c *Config) { c.APIBaseURL = "https://api.example.com" }, false},
		{"http with port", func(c *Config) { c.APIBaseURL = "http://127.0.0.1:8080" }, false},
		{"empty", func(c *Config) { c.APIBaseURL = " " }, true},
		{"ftp", func(c *Config) { c.APIBaseURL = "ftp://example.com" }, true},
		{"no scheme", func(c *Config) { c.APIBaseURL = "example.com" }, true},
		{"no host", func(c *Config) { c.APIBaseURL = "https://" }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvFiles(t *testing.T) {
	files := EnvFiles("/tmp/teetime")
	if len(files) != 2 || files[0] != ".env" || files[1] != filepath.Join("/tmp/teetime", ".env") {
		t.Errorf("EnvFiles() = %v", files)
	}
	if files := EnvFiles(""); len(files) != 1 {
		t.Errorf("EnvFiles(\"\") = %v", files)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	near := filepath.Join(dir, "near.env")
	far := filepath.Join(dir, "far.env")
	if err := os.WriteFile(near, []byte("TEETIME_TEST_A=near\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(far, []byte("TEETIME_TEST_A=far\nTEETIME_TEST_B=far\nTEETIME_TEST_C=far\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TEETIME_TEST_C", "process")
	t.Setenv("TEETIME_TEST_A", "")
	os.Unsetenv("TEETIME_TEST_A")
	t.Setenv("TEETIME_TEST_B", "")
	os.Unsetenv("TEETIME_TEST_B")

	loaded, err := LoadEnvFiles(near, filepath.Join(dir, "missing.env"), far)
	if err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("loaded = %v, want 2 files", loaded)
	}

	checks := map[string]string{
		"TEETIME_TEST_A": "near",
		"TEETIME_TEST_B": "far",
		"TEETIME_TEST_C": "process",
	}
	for key, want := range checks {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestBootstrap_UsesEnvConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TEETIME_TEST_BOOT=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigDir, dir)
	t.Setenv("TEETIME_TEST_BOOT", "")
	os.Unsetenv("TEETIME_TEST_BOOT")
	t.Chdir(t.TempDir())

	loaded, err := Bootstrap()
	if err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("loaded = %v", loaded)
	}
	if got := os.Getenv("TEETIME_TEST_BOOT"); got != "yes" {
		t.Errorf("TEETIME_TEST_BOOT = %q", got)
	}
}
