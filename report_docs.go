package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Locale documents the configuration resolves to, and load errors",
	Args:  cobra.NoArgs,
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().String("format", "text", "Output format: text, json")
}

type docsReport struct {
	Documents []docsReportEntry `json:"documents"`
	Errors    []string          `json:"errors"`
}

type docsReportEntry struct {
	Source string `json:"source"`
	Keys   int    `json:"keys"`
}

func runDocs(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	set := s.documents(cmd.Context())
	if err := reportDocs(set, format); err != nil {
		return err
	}
	if set.Empty() {
		return fmt.Errorf("no locale documents available")
	}
	return nil
}

func reportDocs(set locale.Set, format string) error {
	report := docsReport{Documents: []docsReportEntry{}, Errors: set.Errors}
	if report.Errors == nil {
		report.Errors = []string{}
	}
	for _, doc := range set.Documents {
		report.Documents = append(report.Documents, docsReportEntry{
			Source: doc.SourceID,
			Keys:   len(locale.Flatten(doc.Content)),
		})
	}

	if format == "json" {
		return outputJSON(os.Stdout, report)
	}

	fmt.Printf("Loaded %d documents:\n", len(report.Documents))
	for _, d := range report.Documents {
		fmt.Printf("  %s (%d keys)\n", d.Source, d.Keys)
	}
	if len(report.Errors) > 0 {
		fmt.Printf("Failed to load %d documents:\n", len(report.Errors))
		for _, e := range report.Errors {
			fmt.Printf("  %s\n", e)
		}
	}
	return nil
}
