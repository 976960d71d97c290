package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autocommit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500, cfg.Analysis.SampleLimit)
	assert.Equal(t, 5, cfg.Analysis.BodyFileLimit)
	assert.Equal(t, []string{".py", ".js", ".ts"}, cfg.Analysis.SourceExtensions)
	assert.True(t, cfg.Commit.ConfirmDefault)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[analysis]
sample_limit = 2000
source_extensions = [".go", ".rs"]

[commit]
confirm_default = false
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2000, cfg.Analysis.SampleLimit)
	assert.Equal(t, 5, cfg.Analysis.BodyFileLimit)
	assert.Equal(t, []string{".go", ".rs"}, cfg.Analysis.SourceExtensions)
	assert.False(t, cfg.Commit.ConfirmDefault)
	assert.Equal(t, "info", cfg.Log.Level)

	opts := cfg.AnalyzerOptions()
	assert.Equal(t, 2000, opts.SampleLimit)
	assert.Equal(t, []string{".go", ".rs"}, opts.SourceExtensions)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[analysis\n", "parse"},
		{"zero sample limit", "[analysis]\nsample_limit = 0\n", "sample_limit"},
		{"negative body limit", "[analysis]\nbody_file_limit = -1\n", "body_file_limit"},
		{"extension without dot", "[analysis]\nsource_extensions = [\"go\"]\n", "source_extensions"},
		{"half author", "[commit]\nauthor_name = \"Ada\"\n", "author_email"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"empty level", "[log]\nlevel = \"\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "autocommit.toml")

	cfg := DefaultConfig()
	cfg.Commit.AuthorName = "Ada"
	cfg.Commit.AuthorEmail = "ada@example.com"
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	commitOpts := loaded.CommitOptions(true)
	assert.True(t, commitOpts.Amend)
	assert.Equal(t, "ada@example.com", commitOpts.AuthorEmail)
}

func TestLoad_WritesDefaultsOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path, err := configPath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
