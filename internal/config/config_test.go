package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "aurd.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadServerConfig(t *testing.T) {
	path := writeConfig(t, `
listen_address = "0.0.0.0:9001"
storage_root = "/var/lib/aurd/packages"
default_field_mask = ["name", "pkgver"]
request_timeout = "5s"
`)

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddress != "0.0.0.0:9001" {
		t.Fatalf("ListenAddress = %q", cfg.ListenAddress)
	}
	if cfg.StorageRoot != "/var/lib/aurd/packages" {
		t.Fatalf("StorageRoot = %q", cfg.StorageRoot)
	}
	if len(cfg.DefaultFieldMask) != 2 || cfg.DefaultFieldMask[1] != "pkgver" {
		t.Fatalf("DefaultFieldMask = %v", cfg.DefaultFieldMask)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddress != "127.0.0.1:9000" {
		t.Fatalf("ListenAddress = %q, want default", cfg.ListenAddress)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v, want default 30s", cfg.RequestTimeout)
	}
}

func TestLoadClientConfig(t *testing.T) {
	path := writeConfig(t, `
server_address = "aur.example.org:9000"
lookup_by = "PKGBASE"
field_mask = ["name"]
`)

	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerAddress != "aur.example.org:9000" {
		t.Fatalf("ServerAddress = %q", cfg.ServerAddress)
	}
	if cfg.LookupBy != "PKGBASE" {
		t.Fatalf("LookupBy = %q", cfg.LookupBy)
	}
	if cfg.SearchLogic != "DISJUNCTIVE" {
		t.Fatalf("SearchLogic = %q, want default", cfg.SearchLogic)
	}
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
