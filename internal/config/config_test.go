package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, DirName)
}

func TestInitCreatesFilesOnce(t *testing.T) {
	dir := useTempConfigDir(t)

	created, err := Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %v, want config and proxies files", created)
	}
	for _, name := range []string{ConfigFileName, ProxiesFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	again, err := Init()
	if err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second Init recreated %v", again)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultDays != 7 || cfg.CacheTTLMinutes != 10 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadAcceptsJSON5(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	content := `{
  // comments and trailing commas are fine
  default_days: 14,
  jooble_key: "abc123",
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultDays != 14 {
		t.Fatalf("DefaultDays = %d, want 14", cfg.DefaultDays)
	}
	if cfg.JoobleKey != "abc123" {
		t.Fatalf("JoobleKey = %q", cfg.JoobleKey)
	}
}

func TestLoadProxiesPrecedence(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	fileContent := "http://file-proxy:8080\n# commented out\n\nhttp://file-proxy-2:8080\n"
	if err := os.WriteFile(filepath.Join(dir, ProxiesFileName), []byte(fileContent), 0o644); err != nil {
		t.Fatalf("write proxies: %v", err)
	}

	t.Setenv("JOBAGG_PROXIES", "http://env-proxy:8080")

	got, err := LoadProxies("http://flag-proxy:8080")
	if err != nil {
		t.Fatalf("LoadProxies: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"http://flag-proxy:8080"}) {
		t.Fatalf("flag should win, got %v", got)
	}

	got, err = LoadProxies("")
	if err != nil {
		t.Fatalf("LoadProxies: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"http://env-proxy:8080"}) {
		t.Fatalf("env should win over file, got %v", got)
	}

	t.Setenv("JOBAGG_PROXIES", "")
	got, err = LoadProxies("")
	if err != nil {
		t.Fatalf("LoadProxies: %v", err)
	}
	want := []string{"http://file-proxy:8080", "http://file-proxy-2:8080"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("file proxies = %v, want %v", got, want)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("JOBAGG_TEST_INT", "42")
	if got := envInt("JOBAGG_TEST_INT", 7); got != 42 {
		t.Fatalf("envInt = %d, want 42", got)
	}
	t.Setenv("JOBAGG_TEST_INT", "not a number")
	if got := envInt("JOBAGG_TEST_INT", 7); got != 7 {
		t.Fatalf("envInt with junk = %d, want fallback", got)
	}
}
