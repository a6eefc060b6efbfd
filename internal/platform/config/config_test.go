package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"healthlog/internal/platform/config"
)

// Tests here use t.Setenv and so cannot run in parallel.

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.ScriptURLEnv, "")
	t.Setenv("HEALTHLOG_ADDR", "")
	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := config.Default()
	if cfg.Addr != want.Addr || cfg.ProxyPath != "/api/records" || cfg.Sheet.Backend != "xlsx" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if config.ScriptURL() != "" {
		t.Fatalf("expected empty script url, got %q", config.ScriptURL())
	}
}

func TestLoadLayersFileEnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "healthlog.yaml", `
addr: ":9000"
proxy_path: /records
log:
  level: debug
  format: console
chart:
  variant: line
  window: 30d
sheet:
  backend: sqlite
  path: sheet.db
`)
	envPath := writeFile(t, dir, "test.env", "GOOGLE_SCRIPT_URL= https://script.example/exec \nHEALTHLOG_LOG_LEVEL=warn\n")
	t.Setenv(config.ScriptURLEnv, "")
	t.Setenv("HEALTHLOG_LOG_LEVEL", "")
	_ = os.Unsetenv(config.ScriptURLEnv)
	_ = os.Unsetenv("HEALTHLOG_LOG_LEVEL")
	t.Setenv("HEALTHLOG_ADDR", ":7000")

	cfg, err := config.Load(config.LoadOptions{ConfigPath: cfgPath, EnvFile: envPath})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("environment must win over file, got %q", cfg.Addr)
	}
	if cfg.ProxyPath != "/records" || cfg.Chart.Variant != "line" || cfg.Chart.Window != "30d" || cfg.Sheet.Backend != "sqlite" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if config.ScriptURL() != "https://script.example/exec" {
		t.Fatalf("unexpected script url %q", config.ScriptURL())
	}
}

func TestLoadExplicitMissingFilesFail(t *testing.T) {
	dir := t.TempDir()
	if _, err := config.Load(config.LoadOptions{ConfigPath: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	t.Chdir(dir)
	if _, err := config.Load(config.LoadOptions{EnvFile: filepath.Join(dir, "missing.env")}); err == nil {
		t.Fatalf("expected error for missing explicit env file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*config.Config){
		func(c *config.Config) { c.ProxyPath = "api" },
		func(c *config.Config) { c.Sheet.Backend = "csv" },
		func(c *config.Config) { c.Log.Format = "xml" },
	}
	for i, mutate := range cases {
		cfg := config.Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
