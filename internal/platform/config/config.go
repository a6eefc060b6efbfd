package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile   = "healthlog.yaml"
	DefaultEnv    = ".env"
	ScriptURLEnv  = "GOOGLE_SCRIPT_URL"
	addrEnv       = "HEALTHLOG_ADDR"
	proxyURLEnv   = "HEALTHLOG_PROXY_URL"
	logLevelEnv   = "HEALTHLOG_LOG_LEVEL"
	logFormatEnv  = "HEALTHLOG_LOG_FORMAT"
	sheetPathEnv  = "HEALTHLOG_SHEET_PATH"
	defaultProxy  = "/api/records"
	defaultListen = ":8080"
)

type Config struct {
	Addr      string   `yaml:"addr"`
	ProxyPath string   `yaml:"proxy_path"`
	ProxyURL  string   `yaml:"proxy_url"`
	Log       Log      `yaml:"log"`
	Chart     Chart    `yaml:"chart"`
	Sheet     Sheet    `yaml:"sheet"`
	Snapshot  Snapshot `yaml:"snapshot"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Chart struct {
	Variant string `yaml:"variant"`
	Window  string `yaml:"window"`
}

type Sheet struct {
	Addr    string `yaml:"addr"`
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Snapshot struct {
	Cron string `yaml:"cron"`
	Dir  string `yaml:"dir"`
}

// LoadOptions names the optional files consulted by Load. Empty paths fall back
// to DefaultFile and DefaultEnv, which may be absent.
type LoadOptions struct {
	ConfigPath string
	EnvFile    string
}

func Default() Config {
	return Config{
		Addr:      defaultListen,
		ProxyPath: defaultProxy,
		ProxyURL:  "http://localhost" + defaultListen + defaultProxy,
		Log:       Log{Level: "info", Format: "json"},
		Chart:     Chart{Variant: "combo", Window: "all"},
		Sheet:     Sheet{Addr: ":8090", Backend: "xlsx", Path: "healthlog.xlsx"},
		Snapshot:  Snapshot{Dir: "snapshots"},
	}
}

// Load layers defaults, the YAML file, the .env file and the process
// environment, in that order.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	path, required := opts.ConfigPath, true
	if path == "" {
		path, required = DefaultFile, false
	}
	if err := cfg.readFile(path, required); err != nil {
		return Config{}, err
	}

	envFile, required := opts.EnvFile, true
	if envFile == "" {
		envFile, required = DefaultEnv, false
	}
	if err := godotenv.Load(envFile); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(proxyURLEnv); v != "" {
		c.ProxyURL = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(sheetPathEnv); v != "" {
		c.Sheet.Path = v
	}
}

func (c Config) Validate() error {
	if !strings.HasPrefix(c.ProxyPath, "/") {
		return fmt.Errorf("proxy_path must start with /: %q", c.ProxyPath)
	}
	switch c.Sheet.Backend {
	case "xlsx", "sqlite":
	default:
		return fmt.Errorf("unsupported sheet backend %q", c.Sheet.Backend)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}
	return nil
}

// ScriptURL reads the remote store adapter URL from the environment. The proxy
// calls it per request so a changed value applies without restart.
func ScriptURL() string {
	return strings.TrimSpace(os.Getenv(ScriptURLEnv))
}
