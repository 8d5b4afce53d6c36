package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/callsite"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/checker"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Candidate keys of every translation call, without looking them up",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func init() {
	keysCmd.Flags().String("format", "text", "Output format: text, json")
}

type keysReportEntry struct {
	Location finding.Location  `json:"location"`
	Keys     []string          `json:"keys"`
	Findings []finding.Finding `json:"findings,omitempty"`
}

func runKeys(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	_, calls, err := s.calls(cmd.Context())
	if err != nil {
		return err
	}
	return reportKeys(calls, checker.New(locale.Set{}, s.parser()), format)
}

func reportKeys(calls []callsite.Call, c *checker.Checker, format string) error {
	entries := make([]keysReportEntry, 0, len(calls))
	for _, call := range calls {
		keys, findings := c.Candidates(call)
		entries = append(entries, keysReportEntry{Location: call.Location, Keys: keys, Findings: findings})
	}

	if format == "json" {
		return outputJSON(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Println("No translation calls found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s:\n", e.Location)
		if len(e.Keys) == 0 && len(e.Findings) == 0 {
			fmt.Println("  (not statically checkable)")
		}
		for _, k := range e.Keys {
			fmt.Printf("  %s\n", k)
		}
		for _, f := range e.Findings {
			fmt.Printf("  ! %s\n", f.Message)
		}
	}
	return nil
}
