package keypattern

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

// Values maps placeholder names to their legal substitutions, as decoded
// from annotation JSON. Names may be dotted paths into nested objects.
type Values map[string]any

// Merge copies the top-level entries of other into v, replacing entries
// with the same name.
func (v Values) Merge(other map[string]any) {
	for name, val := range other {
		v[name] = val
	}
}

// Lookup returns the substitutions for name. An exact entry wins over a
// dotted path. Arrays yield their elements, scalars a single value; objects
// and null are not usable.
func (v Values) Lookup(name string) ([]string, bool) {
	val, ok := v[name]
	if !ok {
		val, ok = locale.Lookup(map[string]any(v), name)
	}
	if !ok {
		return nil, false
	}
	switch val := val.(type) {
	case nil, map[string]any:
		return nil, false
	case []any:
		out := make([]string, len(val))
		for i, e := range val {
			out[i] = valueString(e)
		}
		return out, true
	default:
		return []string{valueString(val)}, true
	}
}

func valueString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
