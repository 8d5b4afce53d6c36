package locale

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
)

func TestBuild(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFiles(t, first, map[string]string{"it.json": `{}`, "en.json": `{}`})
	writeFiles(t, second, map[string]string{"en.json": `{"only": "here"}`})

	registry := NewRegistry(nil)
	set := Build(context.Background(), registry, []string{"it", "en"}, []BaseLocation{
		{BaseURI: first},
		{BaseURI: "https://example.invalid/", Resolver: "missing"},
		{BaseURI: second},
	})

	var sources []string
	for _, d := range set.Documents {
		sources = append(sources, d.SourceID)
	}
	assert.Equal(t, []string{
		filepath.Join(first, "it.json"),
		filepath.Join(first, "en.json"),
		filepath.Join(second, "en.json"),
	}, sources)

	require.Len(t, set.Errors, 2)
	assert.Contains(t, set.Errors[0], "Resolver not found: missing for https://example.invalid/")
	assert.Contains(t, set.Errors[1], filepath.Join(second, "it.json"))
	assert.False(t, set.Empty())
}

func TestBuildCustomResolver(t *testing.T) {
	registry := NewRegistry(nil)
	var gotLocales []string
	registry.Register("static", ResolverFunc(func(_ context.Context, locales []string, loc BaseLocation) ([]Document, []string) {
		gotLocales = locales
		return []Document{{SourceID: loc.BaseURI + "#all", Content: map[string]any{"k": "v"}}}, []string{"partial failure"}
	}))

	set := Build(context.Background(), registry, []string{"en", "it"}, []BaseLocation{{BaseURI: "memory", Resolver: "static"}})

	assert.Equal(t, []string{"en", "it"}, gotLocales)
	require.Len(t, set.Documents, 1)
	assert.Equal(t, "memory#all", set.Documents[0].SourceID)
	assert.Equal(t, []string{"partial failure"}, set.Errors)
}

func TestBuildNothingLoaded(t *testing.T) {
	set := Build(context.Background(), NewRegistry(nil), []string{"en"}, []BaseLocation{{BaseURI: t.TempDir()}})
	assert.True(t, set.Empty())
	assert.Len(t, set.Errors, 1)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(nil)
	assert.Equal(t, []string{"blob", "default", "goi18n", "goi18n-json", "goi18n-yaml", "yaml"}, registry.Names())

	def, err := registry.Lookup("")
	require.NoError(t, err)
	named, err := registry.Lookup(DefaultResolverName)
	require.NoError(t, err)
	assert.Same(t, def, named)

	_, err = registry.Lookup("nope")
	assert.Error(t, err)
}

func TestCheckKey(t *testing.T) {
	set := Set{Documents: []Document{
		{SourceID: "/locales/it.json", Content: map[string]any{}},
		{SourceID: "/locales/en.json", Content: map[string]any{"present": "x"}},
	}}

	assert.Equal(t, []finding.Finding{
		finding.MissingKey("missing_key", "/locales/it.json"),
		finding.MissingKey("missing_key", "/locales/en.json"),
	}, set.CheckKey("missing_key"))

	assert.Equal(t, []finding.Finding{
		finding.MissingKey("present", "/locales/it.json"),
	}, set.CheckKey("present"))

	// Same set, same key, same findings.
	assert.Equal(t, set.CheckKey("missing_key"), set.CheckKey("missing_key"))
}

func TestCompare(t *testing.T) {
	ref := Document{SourceID: "en.json", Content: mustDecode(t, `{"a": {"b": "1", "c": "2"}, "d": "3"}`)}
	set := Set{Documents: []Document{
		ref,
		{SourceID: "it.json", Content: mustDecode(t, `{"a": {"b": "1"}}`)},
		{SourceID: "de.json", Content: mustDecode(t, `{"a.c": "2", "a": {"b": "1"}, "d": "3"}`)},
	}}

	assert.Equal(t, []Gap{
		{SourceID: "it.json", Missing: []string{"a.c", "d"}},
		{SourceID: "de.json"},
	}, set.Compare(ref))
}
