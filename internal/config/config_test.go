package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outlook-a11y.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
locale = "de-DE"

[documentFormatting]
reportTableHeaders = false
includeLayoutTables = true

[log]
level = "debug"
format = "json"
`), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.False(t, cfg.DocumentFormatting.ReportTableHeaders)
	assert.True(t, cfg.DocumentFormatting.IncludeLayoutTables)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Arbiter.MaxRedispatchDepth, "unset keys keep defaults")
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, language.MustParse("de-DE"), cfg.Language())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"locale": `locale = "!!"`,
		"level":  "[log]\nlevel = \"loud\"",
		"format": "[log]\nformat = \"xml\"",
		"depth":  "[arbiter]\nmaxRedispatchDepth = 0",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(viper.New(), path)
			assert.Error(t, err)
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "outlook-a11y.toml")
	want := Default()
	want.Locale = "fr-FR"
	want.DocumentFormatting.ReportTableHeaders = false
	require.NoError(t, Write(path, want))

	got, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, want.DocumentFormatting, got.DocumentFormatting)
	assert.Equal(t, want.Locale, got.Locale)
	assert.Equal(t, want.Log, got.Log)
	assert.Equal(t, want.Arbiter, got.Arbiter)
}

func TestDefault_Validates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestNormalizeLogLevel(t *testing.T) {
	got, err := NormalizeLogLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, "warn", got)

	_, err = NormalizeLogLevel("trace")
	assert.Error(t, err)
}
