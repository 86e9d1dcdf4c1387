// Package config handles hfp's configuration via environment variables,
// with an optional YAML file layered on top of (and overriding) the
// environment defaults.
//
// Configuration is loaded with LoadFromEnv() and then, if a config file
// is present, refined with MergeFile(). Validate() should run before the
// config is used.
//
// Example Usage:
//
//	cfg := config.LoadFromEnv()
//	if path, ok := config.DefaultPath(); ok {
//		if err := cfg.MergeFile(path); err != nil {
//			log.Fatalf("config: %v", err)
//		}
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
//
// Environment Variables:
//
//   - HFP_CACHE_DIR: on-disk registry cache directory (sync target)
//   - HFP_ELECTRICITY_RATE_USD_KWH: default local electricity rate
//   - HFP_SNIPPET_LANG: default code-snippet language (python/curl/js)
//   - HFP_SYNC_URL: remote source `sync` refreshes the cache from
//   - HFP_CONFIG: path to a YAML config file overriding the above
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hfproviders/hfp/pkg/snippet"
)

// Config holds every knob hfp's CLI and core packages read at startup.
type Config struct {
	// CacheDir is the user cache directory `sync` writes into and every
	// registry load reads from first, falling back to the bundled tables
	// only when nothing has been synced yet.
	CacheDir string

	// ElectricityRateUSDPerKWh is the default rate pkg/cost.Local uses
	// when the caller doesn't supply one explicitly.
	ElectricityRateUSDPerKWh float64

	// SnippetLang is the default language pkg/snippet.Generate uses when
	// the CLI's --lang flag is absent.
	SnippetLang snippet.Language

	// SyncURL is the remote source `sync` fetches fresh registry tables
	// from. Empty means sync is unconfigured and must be passed explicitly.
	SyncURL string
}

// fileConfig mirrors Config's fields for YAML decoding; every field is a
// pointer so "absent from the file" is distinguishable from "zero value",
// letting MergeFile only override what the file actually sets.
type fileConfig struct {
	CacheDir                 *string  `yaml:"cache_dir"`
	ElectricityRateUSDPerKWh *float64 `yaml:"electricity_rate_usd_kwh"`
	SnippetLang              *string  `yaml:"snippet_lang"`
	SyncURL                  *string  `yaml:"sync_url"`
}

// LoadFromEnv builds a Config from HFP_* environment variables, falling
// back to documented defaults for anything unset.
func LoadFromEnv() *Config {
	cacheDir := getEnv("HFP_CACHE_DIR", defaultCacheDir())
	return &Config{
		CacheDir:                 cacheDir,
		ElectricityRateUSDPerKWh: getEnvFloat("HFP_ELECTRICITY_RATE_USD_KWH", 0.15),
		SnippetLang:              snippet.Language(getEnv("HFP_SNIPPET_LANG", string(snippet.Python))),
		SyncURL:                  getEnv("HFP_SYNC_URL", ""),
	}
}

// DefaultPath returns the config file path HFP_CONFIG names, if set.
func DefaultPath() (string, bool) {
	p := os.Getenv("HFP_CONFIG")
	return p, p != ""
}

// MergeFile reads a YAML config file and overrides c's fields with
// whatever keys it sets, leaving everything else (env-derived or
// already-merged) untouched.
func (c *Config) MergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.CacheDir != nil {
		c.CacheDir = *fc.CacheDir
	}
	if fc.ElectricityRateUSDPerKWh != nil {
		c.ElectricityRateUSDPerKWh = *fc.ElectricityRateUSDPerKWh
	}
	if fc.SnippetLang != nil {
		c.SnippetLang = snippet.Language(*fc.SnippetLang)
	}
	if fc.SyncURL != nil {
		c.SyncURL = *fc.SyncURL
	}
	return nil
}

// Validate checks the configuration for values that would make the CLI
// misbehave silently rather than fail fast.
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return fmt.Errorf("cache dir must not be empty")
	}
	if c.ElectricityRateUSDPerKWh <= 0 {
		return fmt.Errorf("electricity rate must be positive, got %v", c.ElectricityRateUSDPerKWh)
	}
	valid := false
	for _, l := range snippet.Languages() {
		if c.SnippetLang == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported snippet language %q", c.SnippetLang)
	}
	return nil
}

// String returns a representation safe for logging: every field here is
// already non-sensitive, so no redaction is needed before printing it.
func (c *Config) String() string {
	return fmt.Sprintf("Config{CacheDir: %s, ElectricityRate: %.3f, SnippetLang: %s, SyncURL: %s}",
		c.CacheDir, c.ElectricityRateUSDPerKWh, c.SnippetLang, c.SyncURL)
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + "/hfp"
	}
	return ".hfp-cache"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
