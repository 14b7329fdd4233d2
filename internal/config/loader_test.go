package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadServerSettingsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	content := []byte("address: \":2222\"\nidle_timeout_minutes: 5\ntick_rate: 30\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadServerSettings(path)
	if err != nil {
		t.Fatalf("LoadServerSettings: %v", err)
	}
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, expected :2222", cfg.Address)
	}
	if cfg.IdleTimeoutMinutes != 5 {
		t.Errorf("IdleTimeoutMinutes = %d, expected 5", cfg.IdleTimeoutMinutes)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
}

func TestLoadServerSettingsPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	if err := os.WriteFile(path, []byte("address: \":9999\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadServerSettings(path)
	if err != nil {
		t.Fatalf("LoadServerSettings: %v", err)
	}
	if cfg.Address != ":9999" {
		t.Errorf("Address = %q, expected :9999", cfg.Address)
	}
	if cfg.TickRate != 60 {
		t.Errorf("unset fields should keep defaults, TickRate = %d", cfg.TickRate)
	}
}

func TestLoadServerSettingsMissingCustomPath(t *testing.T) {
	_, err := LoadServerSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("an explicitly requested missing file should be an error")
	}
}

func TestLoadServerSettingsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte(":-{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadServerSettings(path); err == nil {
		t.Error("invalid YAML in an explicit file should be an error")
	}
}

func TestDefaultServerSettings(t *testing.T) {
	cfg := DefaultServerSettings()
	if cfg.Address != ":23234" || cfg.IdleTimeoutMinutes != 30 || cfg.TickRate != 60 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
