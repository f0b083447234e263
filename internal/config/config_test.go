package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  driver: sqlite
  path: /tmp/bloom-test.db
app:
  default_user_email: someone@example.com
  timezone: UTC
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.Path != "/tmp/bloom-test.db" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.App.DefaultUserEmail != "someone@example.com" {
		t.Errorf("DefaultUserEmail = %q", cfg.App.DefaultUserEmail)
	}
	if cfg.App.CompletedLogLimit != 100 {
		t.Errorf("CompletedLogLimit = %d, want default 100", cfg.App.CompletedLogLimit)
	}
	if cfg.RateLimit.MaxRequests != 600 {
		t.Errorf("RateLimit.MaxRequests = %d, want default 600", cfg.RateLimit.MaxRequests)
	}
	loc, err := cfg.App.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown driver",
			body: "database:\n  driver: oracle\n",
		},
		{
			name: "invalid timezone",
			body: "database:\n  driver: sqlite\napp:\n  timezone: Invalid/Zone\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.body)
			if _, err := LoadConfig(dir); err == nil {
				t.Errorf("LoadConfig() expected error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("LoadConfig() expected error for missing config file")
	}
}

func TestAppConfigLocationLocal(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := AppConfig{Timezone: tz}.Location()
		if err != nil {
			t.Fatalf("Location(%q) error = %v", tz, err)
		}
		if loc == nil {
			t.Fatalf("Location(%q) returned nil", tz)
		}
	}
}
