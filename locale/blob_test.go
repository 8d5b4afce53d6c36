package locale

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func TestBlobResolverMemory(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.WriteAll(ctx, "locales/en.json", []byte(`{"valid_key_1": "One"}`), nil))
	require.NoError(t, bucket.WriteAll(ctx, "locales/it.json", []byte(`{`), nil))

	var opened string
	r := &BlobResolver{Open: func(_ context.Context, bucketURL string) (*blob.Bucket, error) {
		opened = bucketURL
		return bucket, nil
	}}

	docs, errs := r.Resolve(ctx, []string{"en", "it", "fr"}, BaseLocation{BaseURI: "mem://translations?prefix=locales/", Resolver: "blob"})

	assert.Equal(t, "mem://translations", opened)
	require.Len(t, docs, 1)
	assert.Equal(t, "mem://translations/locales/en.json", docs[0].SourceID)
	assert.True(t, Exists(docs[0], "valid_key_1"))
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "mem://translations/locales/it.json")
	assert.Contains(t, errs[1], "mem://translations/locales/fr.json")
}

func TestBlobResolverFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"en.json": `{"a": {"b": "c"}}`})

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(dir)}
	docs, errs := (&BlobResolver{}).Resolve(context.Background(), []string{"en"}, BaseLocation{BaseURI: u.String()})

	assert.Empty(t, errs)
	require.Len(t, docs, 1)
	assert.True(t, Exists(docs[0], "a.b"))
}

func TestBlobResolverBadURL(t *testing.T) {
	docs, errs := (&BlobResolver{}).Resolve(context.Background(), []string{"en", "it"}, BaseLocation{BaseURI: "nosuchdriver://bucket"})
	assert.Empty(t, docs)
	assert.Len(t, errs, 2)
}
