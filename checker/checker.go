// Package checker runs the key-existence check over translation call sites.
package checker

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/annotation"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/callsite"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

// Checker checks call sites against a document set. The set is never
// modified, so one Checker may check many call sites concurrently.
type Checker struct {
	set    locale.Set
	parser annotation.Parser
	// Jobs bounds concurrent call-site checks in Run; 0 means GOMAXPROCS.
	Jobs int
}

// New returns a checker over set.
func New(set locale.Set, parser annotation.Parser) *Checker {
	return &Checker{set: set, parser: parser}
}

// Check runs one call site through annotation parsing, key extraction,
// expansion and lookup.
func (c *Checker) Check(call callsite.Call) []finding.Finding {
	keys, findings := c.Candidates(call)
	for _, key := range keys {
		for _, f := range c.set.CheckKey(key) {
			findings = append(findings, f.At(call.Location))
		}
	}
	return findings
}

// Candidates returns the keys a call site can produce without looking them
// up, plus the findings raised while producing them. A malformed annotation
// yields no keys at all.
func (c *Checker) Candidates(call callsite.Call) ([]string, []finding.Finding) {
	values, err := c.parser.Parse(call.Comments)
	if err != nil {
		comment := err.Error()
		var perr *annotation.ParseError
		if errors.As(err, &perr) {
			comment = perr.Comment
		}
		return nil, []finding.Finding{finding.AnnotationJSON(comment).At(call.Location)}
	}

	keys, missing, err := callsite.Keys(call.Arg, values)
	var findings []finding.Finding
	for _, name := range missing {
		findings = append(findings, finding.MissingTemplateKey(name, values).At(call.Location))
	}
	var tooMany *keypattern.TooManyKeysError
	if errors.As(err, &tooMany) {
		findings = append(findings, finding.TooManyKeys(tooMany.Pattern, tooMany.Limit).At(call.Location))
	}
	return keys, findings
}

// SourceFindings converts the set's load errors into findings, followed by
// a single no-documents finding when nothing loaded.
func (c *Checker) SourceFindings() []finding.Finding {
	var findings []finding.Finding
	for _, e := range c.set.Errors {
		findings = append(findings, finding.InvalidSource(e))
	}
	if c.set.Empty() {
		findings = append(findings, finding.NoDocuments())
	}
	return findings
}

// Run checks every call and returns source findings first, then per-call
// findings in call order. When the set is empty no call is checked.
func (c *Checker) Run(ctx context.Context, calls []callsite.Call) ([]finding.Finding, error) {
	findings := c.SourceFindings()
	if c.set.Empty() {
		return findings, nil
	}

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([][]finding.Finding, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, call := range calls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.Check(call)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		findings = append(findings, r...)
	}
	return findings, nil
}
