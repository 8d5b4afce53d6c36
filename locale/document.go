// Package locale loads locale documents and answers key-existence queries
// against them.
package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Document is one parsed locale document.
type Document struct {
	// SourceID is the resolved path or URI the document was read from.
	SourceID string
	// Content is the decoded tree: map[string]any, []any, or a scalar.
	Content any
}

// DecodeJSON parses a JSON locale document. Numbers are kept as json.Number.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var content any
	if err := dec.Decode(&content); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return content, nil
}

// Exists reports whether key is present in doc. An exact top-level property
// wins; otherwise key is treated as a dotted path.
func Exists(doc Document, key string) bool {
	if m, ok := doc.Content.(map[string]any); ok {
		if _, found := m[key]; found {
			return true
		}
	}
	_, found := Lookup(doc.Content, key)
	return found
}

// Lookup walks tree along the dot-separated path and returns the value found.
// Arrays are indexed by decimal segments.
func Lookup(tree any, path string) (any, bool) {
	node := tree
	for _, part := range strings.Split(path, ".") {
		switch val := node.(type) {
		case map[string]any:
			next, ok := val[part]
			if !ok {
				return nil, false
			}
			node = next
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(val) {
				return nil, false
			}
			node = val[i]
		default:
			return nil, false
		}
	}
	return node, true
}

// Flatten returns the sorted dotted keys of every leaf in tree.
func Flatten(tree any) []string {
	var keys []string
	flattenInto("", tree, &keys)
	sort.Strings(keys)
	return keys
}

func flattenInto(prefix string, node any, keys *[]string) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			*keys = append(*keys, prefix)
		}
		return
	}
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flattenInto(key, v, keys)
	}
}
