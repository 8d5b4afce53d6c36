// Package finding defines the reportable outcomes of a key check.
//
// Findings are plain values. The host decides how to render them.
package finding

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a finding.
type Kind string

const (
	KindMissingKey         Kind = "missing-key"
	KindMissingTemplateKey Kind = "missing-template-key"
	KindAnnotationJSON     Kind = "annotation-json"
	KindInvalidSource      Kind = "invalid-source"
	KindNoDocuments        Kind = "no-documents"
	KindTooManyKeys        Kind = "too-many-keys"
)

// Location points at the call site (or file) a finding belongs to.
// A zero Location means the finding is not tied to source text.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (l Location) String() string {
	switch {
	case l.File == "":
		return "-"
	case l.Line == 0:
		return l.File
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Finding is one reportable problem.
type Finding struct {
	Kind     Kind           `json:"kind"`
	Location Location       `json:"location"`
	Message  string         `json:"message"`
	Data     map[string]any `json:"data,omitempty"`
}

// At returns a copy of f stamped with loc.
func (f Finding) At(loc Location) Finding {
	f.Location = loc
	return f
}

// MissingKey reports a candidate key absent from the document sourceID.
func MissingKey(key, sourceID string) Finding {
	return Finding{
		Kind:    KindMissingKey,
		Message: fmt.Sprintf("Missing key: %s in JSON: %s", key, sourceID),
		Data:    map[string]any{"key": key, "jsonPath": sourceID},
	}
}

// MissingTemplateKey reports a placeholder with no enumerated values.
// values is the merged annotation mapping in effect for the call site.
func MissingTemplateKey(name string, values map[string]any) Finding {
	encoded, err := json.Marshal(values)
	if err != nil || values == nil {
		encoded = []byte("{}")
	}
	return Finding{
		Kind:    KindMissingTemplateKey,
		Message: fmt.Sprintf("Missing template key: %s in Template JSON valid values: %s", name, encoded),
		Data:    map[string]any{"templateKey": name, "json": string(encoded)},
	}
}

// TooManyKeys reports a template whose annotation values allow more than
// limit keys. None of its keys are checked.
func TooManyKeys(pattern string, limit int) Finding {
	return Finding{
		Kind:    KindTooManyKeys,
		Message: fmt.Sprintf("Too many key combinations: %s expands to more than %d keys", pattern, limit),
		Data:    map[string]any{"template": pattern, "limit": limit},
	}
}

// AnnotationJSON reports an annotation whose JSON could not be decoded.
func AnnotationJSON(comment string) Finding {
	return Finding{
		Kind:    KindAnnotationJSON,
		Message: fmt.Sprintf("Failed parsing annotation JSON: %s", comment),
		Data:    map[string]any{"comment": comment},
	}
}

// InvalidSource reports a locale document that could not be loaded.
func InvalidSource(detail string) Finding {
	return Finding{
		Kind:    KindInvalidSource,
		Message: fmt.Sprintf("Invalid JSON source: %s", detail),
		Data:    map[string]any{"error": detail},
	}
}

// NoDocuments reports that no locale document could be loaded at all.
func NoDocuments() Finding {
	return Finding{
		Kind:    KindNoDocuments,
		Message: "No locale documents available",
	}
}
