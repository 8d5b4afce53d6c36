// Package annotation reads placeholder values from source comments such as
//
//	/* i18n-validator/json-key-exists {"mode": ["edit", "create"]} */
package annotation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
)

// DefaultTag marks a comment as an annotation. It is a substring of the
// ESLint plugin's marker, so comments written for that plugin still match.
const DefaultTag = "i18n-validator/json-key-exists"

// objectSpan matches from the first "{" to the last "}" on a line.
var objectSpan = regexp.MustCompile(`\{.*\}`)

// ParseError is returned for a tagged comment whose JSON is malformed.
type ParseError struct {
	Comment string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing annotation %q: %v", e.Comment, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser extracts placeholder values from comments carrying Tag.
type Parser struct {
	Tag string
}

// NewParser returns a parser for tag, or DefaultTag when tag is empty.
func NewParser(tag string) Parser {
	if tag == "" {
		tag = DefaultTag
	}
	return Parser{Tag: tag}
}

// Parse merges the JSON objects of every tagged comment, later comments
// replacing same-named entries. Untagged comments are ignored. The first
// malformed annotation stops parsing.
func (p Parser) Parse(comments []string) (keypattern.Values, error) {
	values := keypattern.Values{}
	for _, comment := range comments {
		if !strings.Contains(comment, p.Tag) {
			continue
		}
		obj, err := decodeObject(comment)
		if err != nil {
			return nil, &ParseError{Comment: comment, Err: err}
		}
		values.Merge(obj)
	}
	return values, nil
}

func decodeObject(comment string) (map[string]any, error) {
	span := objectSpan.FindString(comment)
	if span == "" {
		return nil, fmt.Errorf("no JSON object found")
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(span)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return obj, nil
}
