package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
)

var (
	locationColor = color.New(color.Faint)
	errorColor    = color.New(color.FgRed)
	warnColor     = color.New(color.FgYellow)
	okColor       = color.New(color.FgGreen)
)

// findingsReport is the JSON form of a check run.
type findingsReport struct {
	Run      string            `json:"run"`
	Files    int               `json:"files"`
	Calls    int               `json:"calls"`
	Findings []finding.Finding `json:"findings"`
}

// outputFindings prints findings in text or JSON format.
func outputFindings(w io.Writer, report findingsReport, format string) error {
	if format == "json" {
		if report.Findings == nil {
			report.Findings = []finding.Finding{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if len(report.Findings) == 0 {
		okColor.Fprintf(w, "No problems found in %d calls across %d files.\n", report.Calls, report.Files)
		return nil
	}

	fmt.Fprintf(w, "Found %d problems:\n", len(report.Findings))
	for _, f := range report.Findings {
		c := errorColor
		if f.Kind == finding.KindInvalidSource {
			c = warnColor
		}
		fmt.Fprintf(w, "  %s  %s\n", locationColor.Sprint(f.Location), c.Sprint(f.Message))
	}
	return nil
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
