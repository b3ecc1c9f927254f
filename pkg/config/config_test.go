package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sdejongh/templa/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"q", "*.bin", ".git", ".svg", ".vs"}, cfg.Ignore)
	assert.Equal(t, "human", cfg.Output.Format)
	assert.Empty(t, cfg.Replace)

	// the default list must not alias the package-level slice
	cfg.Ignore[0] = "changed"
	assert.Equal(t, "q", models.DefaultIgnore[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"EmptyReplaceKey", func(c *Config) { c.Replace[""] = "x" }, "replace"},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			var ve *models.ValidationError
			require.ErrorAs(t, cfg.Validate(), &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `ignore:
  - "*.tmp"
replace:
  NAME: World
  Project: Demo
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp"}, cfg.Ignore)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level, "unset fields keep defaults")

	pairs := cfg.ReplaceMap().Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "NAME", pairs[0].From)
	assert.Equal(t, "Project", pairs[1].From)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ignore: [unterminated"), 0644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("output:\n  format: xml\n"), 0644))
	_, err = LoadFromFile(invalid)
	assert.Error(t, err)
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Replace["NAME"] = "World"

	require.NoError(t, SaveToFile(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Ignore, loaded.Ignore)
	assert.Equal(t, "World", loaded.Replace["NAME"])
}

func TestDecode(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Decode(strings.NewReader("ignroe:\n  - x\n"))
		assert.Error(t, err)
	})
}

func TestLoadDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "no file means defaults")

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
