package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfproviders/hfp/pkg/snippet"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()
	assert.NotEmpty(t, cfg.CacheDir)
	assert.InDelta(t, 0.15, cfg.ElectricityRateUSDPerKWh, 1e-9)
	assert.Equal(t, snippet.Python, cfg.SnippetLang)
	assert.Empty(t, cfg.SyncURL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_ReadsOverrides(t *testing.T) {
	t.Setenv("HFP_CACHE_DIR", "/tmp/hfp-test-cache")
	t.Setenv("HFP_ELECTRICITY_RATE_USD_KWH", "0.22")
	t.Setenv("HFP_SNIPPET_LANG", "curl")
	t.Setenv("HFP_SYNC_URL", "https://example.test/registry")

	cfg := LoadFromEnv()
	assert.Equal(t, "/tmp/hfp-test-cache", cfg.CacheDir)
	assert.InDelta(t, 0.22, cfg.ElectricityRateUSDPerKWh, 1e-9)
	assert.Equal(t, snippet.Curl, cfg.SnippetLang)
	assert.Equal(t, "https://example.test/registry", cfg.SyncURL)
}

func TestMergeFile_OverridesOnlySetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hfp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sync_url: https://file.example/reg\n"), 0o644))

	cfg := LoadFromEnv()
	original := cfg.CacheDir

	require.NoError(t, cfg.MergeFile(path))
	assert.Equal(t, "https://file.example/reg", cfg.SyncURL)
	assert.Equal(t, original, cfg.CacheDir)
}

func TestMergeFile_MissingFileErrors(t *testing.T) {
	cfg := LoadFromEnv()
	err := cfg.MergeFile("/nonexistent/hfp.yaml")
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := LoadFromEnv()
	cfg.CacheDir = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadFromEnv()
	cfg.ElectricityRateUSDPerKWh = 0
	assert.Error(t, cfg.Validate())

	cfg = LoadFromEnv()
	cfg.SnippetLang = snippet.Language("cobol")
	assert.Error(t, cfg.Validate())
}

func TestDefaultPath_EmptyWhenUnset(t *testing.T) {
	t.Setenv("HFP_CONFIG", "")
	_, ok := DefaultPath()
	assert.False(t, ok)
}
