package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "http://localhost:3000" {
		t.Fatalf("unexpected default api base: %s", cfg.APIBase)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("unexpected default page size: %d", cfg.PageSize)
	}
	if cfg.Theme != "glass" {
		t.Fatalf("unexpected default theme: %s", cfg.Theme)
	}
}

func TestLoadConfig_FileAndDefaulting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "api_base: https://links.example.com\npage_size: -3\ngithub_user: someone\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "https://links.example.com" {
		t.Fatalf("api base not read from file: %s", cfg.APIBase)
	}
	if cfg.GitHubUser != "someone" {
		t.Fatalf("github user not read from file: %s", cfg.GitHubUser)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("invalid page size must fall back to 10, got %d", cfg.PageSize)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("api_base: https://file.example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_API_BASE", "https://env.example.com")
	t.Setenv("FOLIO_THEME", "minimal")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "https://env.example.com" {
		t.Fatalf("env must override file, got %s", cfg.APIBase)
	}
	if cfg.Theme != "minimal" {
		t.Fatalf("env theme not applied, got %s", cfg.Theme)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	in := DefaultConfig()
	in.GitHubUser = "roundtrip"

	if err := SaveConfig(in, path); err != nil {
		t.Fatal(err)
	}
	out, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if out.GitHubUser != "roundtrip" {
		t.Fatalf("expected saved value back, got %s", out.GitHubUser)
	}
}
