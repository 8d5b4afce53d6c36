package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		check func(t *testing.T, dir string, cfg *config)
	}{
		{
			name: "yaml with bare and object locations",
			file: ".i18n-keycheck.yaml",
			body: `
locales: [it, en]
jsonBaseURIs:
  - tests/locales
  - baseURI: https://example.com/locales/
    resolver: yaml
sources: [src]
httpTimeout: 5s
`,
			check: func(t *testing.T, dir string, cfg *config) {
				assert.Equal(t, []string{"it", "en"}, cfg.Locales)
				assert.Equal(t, []locale.BaseLocation{
					{BaseURI: filepath.Join(dir, "tests", "locales")},
					{BaseURI: "https://example.com/locales/", Resolver: "yaml"},
				}, cfg.JSONBaseURIs)
				assert.Equal(t, []string{filepath.Join(dir, "src")}, cfg.Sources)
				assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
				assert.Equal(t, defaultExtensions, cfg.Extensions)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name: "toml",
			file: ".i18n-keycheck.toml",
			body: `
locales = ["en"]
jsonBaseURIs = ["/abs/locales", { baseURI = "mem://", resolver = "blob" }]
namespaces = ["i18n"]
methods = ["t", "tc"]
jobs = 4
`,
			check: func(t *testing.T, dir string, cfg *config) {
				assert.Equal(t, []locale.BaseLocation{
					{BaseURI: "/abs/locales"},
					{BaseURI: "mem://", Resolver: "blob"},
				}, cfg.JSONBaseURIs)
				assert.Equal(t, []string{"i18n"}, cfg.Namespaces)
				assert.Equal(t, []string{"t", "tc"}, cfg.Methods)
				assert.Equal(t, 4, cfg.Jobs)
				assert.Equal(t, []string{dir}, cfg.Sources)
				assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			cfg, err := loadConfig(path)
			require.NoError(t, err)
			tc.check(t, dir, cfg)
		})
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".i18n-keycheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locales: [it]\njsonBaseURIs: [locales]\nlogLevel: warn\n"), 0o644))

	t.Setenv("I18N_KEYCHECK_LOCALES", "de,fr")
	t.Setenv("I18N_KEYCHECK_ANNOTATION_TAG", "keys")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr"}, cfg.Locales)
	assert.Equal(t, "keys", cfg.AnnotationTag)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []locale.BaseLocation{{BaseURI: filepath.Join(dir, "locales")}}, cfg.JSONBaseURIs)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"no locales", "jsonBaseURIs: [locales]\n", "locales must not be empty"},
		{"no base uris", "locales: [en]\n", "jsonBaseURIs must not be empty"},
		{"empty base uri", "locales: [en]\njsonBaseURIs:\n  - resolver: yaml\n", "jsonBaseURIs[0]: baseURI must not be empty"},
		{"malformed", "locales: [en\n", "parsing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".i18n-keycheck.yml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := loadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := findConfig(nested)
	require.NoError(t, err)
	assert.Empty(t, path)

	want := filepath.Join(root, "a", ".i18n-keycheck.toml")
	require.NoError(t, os.WriteFile(want, []byte(""), 0o644))
	path, err = findConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, path)
}
