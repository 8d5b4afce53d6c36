package locale

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// Resolver loads one document per locale from a base location. Failures are
// returned as error strings and never stop the remaining locales.
type Resolver interface {
	Resolve(ctx context.Context, locales []string, loc BaseLocation) ([]Document, []string)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, locales []string, loc BaseLocation) ([]Document, []string)

func (f ResolverFunc) Resolve(ctx context.Context, locales []string, loc BaseLocation) ([]Document, []string) {
	return f(ctx, locales, loc)
}

// IsURI reports whether base should be joined with URI semantics. A single
// letter scheme is a Windows drive, not a URI.
func IsURI(base string) bool {
	u, err := url.Parse(base)
	return err == nil && len(u.Scheme) > 1
}

// Address joins base with name: URI reference resolution when base is a
// URI, an absolute filesystem path otherwise.
func Address(base, name string) (string, error) {
	if IsURI(base) {
		u, err := url.Parse(base)
		if err != nil {
			return "", err
		}
		ref, err := url.Parse(name)
		if err != nil {
			return "", err
		}
		return u.ResolveReference(ref).String(), nil
	}
	return filepath.Abs(filepath.Join(base, name))
}

// Decoder turns the raw bytes read from addr into a document tree.
type Decoder func(addr string, data []byte) (any, error)

// FileHTTPResolver reads "<locale><Ext>" from a directory or fetches it from
// an http(s) or file URI, then decodes it.
type FileHTTPResolver struct {
	Client *http.Client
	Ext    string
	Decode Decoder
}

// NewJSONResolver returns the default resolver for "<locale>.json" documents.
func NewJSONResolver(client *http.Client) *FileHTTPResolver {
	return &FileHTTPResolver{Client: client, Ext: ".json", Decode: bytesOnly(DecodeJSON)}
}

func bytesOnly(decode func([]byte) (any, error)) Decoder {
	return func(_ string, data []byte) (any, error) {
		return decode(data)
	}
}

func (r *FileHTTPResolver) Resolve(ctx context.Context, locales []string, loc BaseLocation) ([]Document, []string) {
	var docs []Document
	var errs []string
	for _, locale := range locales {
		addr, err := Address(loc.BaseURI, locale+r.Ext)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Error reading or parsing: %s %v", loc.BaseURI, err))
			continue
		}
		doc, err := r.load(ctx, addr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Error reading or parsing: %s %v", addr, err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, errs
}

func (r *FileHTTPResolver) load(ctx context.Context, addr string) (Document, error) {
	data, err := r.fetch(ctx, addr)
	if err != nil {
		return Document{}, err
	}
	content, err := r.Decode(addr, data)
	if err != nil {
		return Document{}, fmt.Errorf("parsing: %w", err)
	}
	return Document{SourceID: addr, Content: content}, nil
}

func (r *FileHTTPResolver) fetch(ctx context.Context, addr string) ([]byte, error) {
	if !IsURI(addr) {
		return os.ReadFile(addr)
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "file":
		return os.ReadFile(filepath.FromSlash(u.Path))
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
