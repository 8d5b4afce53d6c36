package locale

import (
	"context"
	"fmt"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
)

// Set is every document loaded for a run plus the errors collected while
// loading. Documents only ever holds successfully parsed documents.
type Set struct {
	Documents []Document
	Errors    []string
}

// Build resolves every location in order and concatenates the results.
// A location naming an unknown resolver becomes an error entry.
func Build(ctx context.Context, registry *Registry, locales []string, locations []BaseLocation) Set {
	var set Set
	for _, loc := range locations {
		res, err := registry.Lookup(loc.Resolver)
		if err != nil {
			set.Errors = append(set.Errors, fmt.Sprintf("Resolver not found: %s for %s: %v", loc.Resolver, loc.BaseURI, err))
			continue
		}
		docs, errs := res.Resolve(ctx, locales, loc)
		set.Documents = append(set.Documents, docs...)
		set.Errors = append(set.Errors, errs...)
	}
	return set
}

// Empty reports whether no document was loaded.
func (s Set) Empty() bool {
	return len(s.Documents) == 0
}

// CheckKey returns one missing-key finding for every document lacking key,
// in document order.
func (s Set) CheckKey(key string) []finding.Finding {
	var findings []finding.Finding
	for _, doc := range s.Documents {
		if !Exists(doc, key) {
			findings = append(findings, finding.MissingKey(key, doc.SourceID))
		}
	}
	return findings
}

// Gap lists the leaf keys of a reference document absent from another one.
type Gap struct {
	SourceID string   `json:"source"`
	Missing  []string `json:"missing"`
}

// Compare reports, for every document other than ref, the leaf keys of ref
// that the document lacks.
func (s Set) Compare(ref Document) []Gap {
	keys := Flatten(ref.Content)
	var gaps []Gap
	for _, doc := range s.Documents {
		if doc.SourceID == ref.SourceID {
			continue
		}
		gap := Gap{SourceID: doc.SourceID}
		for _, k := range keys {
			if !Exists(doc, k) {
				gap.Missing = append(gap.Missing, k)
			}
		}
		gaps = append(gaps, gap)
	}
	return gaps
}
