package locale

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// BlobResolver reads "<prefix><locale>.json" objects from a Go CDK bucket.
// BaseURI is a bucket URL such as "file:///srv/locales" or
// "s3://bucket?region=eu-west-1&prefix=locales/"; the prefix query parameter
// is consumed here and not passed to the driver.
type BlobResolver struct {
	// Open opens the bucket URL. Defaults to blob.OpenBucket, which only
	// knows the drivers linked into the binary.
	Open func(ctx context.Context, bucketURL string) (*blob.Bucket, error)
}

func (r *BlobResolver) Resolve(ctx context.Context, locales []string, loc BaseLocation) ([]Document, []string) {
	bucketURL, prefix, err := splitBucketURL(loc.BaseURI)
	if err != nil {
		return nil, []string{fmt.Sprintf("Error reading or parsing: %s %v", loc.BaseURI, err)}
	}
	sourceBase := bucketURL
	if i := strings.IndexByte(sourceBase, '?'); i >= 0 {
		sourceBase = sourceBase[:i]
	}
	sourceBase = strings.TrimSuffix(sourceBase, "/") + "/"

	open := r.Open
	if open == nil {
		open = blob.OpenBucket
	}
	bucket, err := open(ctx, bucketURL)
	if err != nil {
		errs := make([]string, 0, len(locales))
		for _, locale := range locales {
			errs = append(errs, fmt.Sprintf("Error reading or parsing: %s %v", sourceBase+prefix+locale+".json", err))
		}
		return nil, errs
	}
	defer bucket.Close()

	var docs []Document
	var errs []string
	for _, locale := range locales {
		key := prefix + locale + ".json"
		sourceID := sourceBase + key
		data, err := bucket.ReadAll(ctx, key)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Error reading or parsing: %s %v", sourceID, err))
			continue
		}
		content, err := DecodeJSON(data)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Error reading or parsing: %s parsing: %v", sourceID, err))
			continue
		}
		docs = append(docs, Document{SourceID: sourceID, Content: content})
	}
	return docs, errs
}

// splitBucketURL removes the prefix query parameter from raw.
func splitBucketURL(raw string) (bucketURL, prefix string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" {
		return "", "", fmt.Errorf("not a bucket URL")
	}
	q := u.Query()
	prefix = q.Get("prefix")
	q.Del("prefix")
	u.RawQuery = q.Encode()
	return u.String(), prefix, nil
}
