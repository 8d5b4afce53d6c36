package locale

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessageFile(t *testing.T) {
	content, err := DecodeMessageFile("/locales/en.toml", []byte(`
"flat.key" = "Flat"
PersonCats = "{{.Name}} has cats."

[greeting]
day = "Hi"
`))
	require.NoError(t, err)

	doc := Document{Content: content}
	assert.True(t, Exists(doc, "flat.key"))
	assert.True(t, Exists(doc, "PersonCats"))
	assert.True(t, Exists(doc, "greeting.day"))
	assert.False(t, Exists(doc, "greeting.night"))
}

func TestGoI18nResolver(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"en.yaml": "welcome: Welcome\n",
	})

	docs, errs := NewGoI18nResolver(nil, "yaml").Resolve(context.Background(), []string{"en", "it"}, BaseLocation{BaseURI: dir})

	require.Len(t, docs, 1)
	assert.True(t, Exists(docs[0], "welcome"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "it.yaml")
}

func TestGoI18nRegistryFormats(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"en.toml": "toml_key = \"T\"\n",
		"en.json": `{"json_key": "J", "nested": {"key": "N"}}`,
		"en.yaml": "yaml_key: Y\n",
	})
	registry := NewRegistry(nil)

	tests := []struct {
		resolver string
		key      string
		source   string
	}{
		{"goi18n", "toml_key", "en.toml"},
		{"goi18n-json", "nested.key", "en.json"},
		{"goi18n-yaml", "yaml_key", "en.yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.resolver, func(t *testing.T) {
			set := Build(context.Background(), registry, []string{"en"}, []BaseLocation{{BaseURI: dir, Resolver: tc.resolver}})
			require.Empty(t, set.Errors)
			require.Len(t, set.Documents, 1)
			assert.Equal(t, filepath.Join(dir, tc.source), set.Documents[0].SourceID)
			assert.Empty(t, set.CheckKey(tc.key))
		})
	}
}
