package locale

import (
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

// NewYAMLResolver returns a resolver for nested "<locale>.yaml" documents,
// the layout rancher-desktop keeps its translations in.
func NewYAMLResolver(client *http.Client) *FileHTTPResolver {
	return &FileHTTPResolver{Client: client, Ext: ".yaml", Decode: bytesOnly(DecodeYAML)}
}

// DecodeYAML parses a YAML locale document into the same tree shape that
// DecodeJSON produces.
func DecodeYAML(data []byte) (any, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	return normalizeYAML(raw), nil
}

// normalizeYAML converts maps with non-string keys so that dotted lookups
// behave the same as for JSON documents.
func normalizeYAML(node interface{}) any {
	switch val := node.(type) {
	case map[string]interface{}:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = normalizeYAML(v)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(v)
		}
		return out
	case []interface{}:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = normalizeYAML(v)
		}
		return out
	default:
		return val
	}
}
