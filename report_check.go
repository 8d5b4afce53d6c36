package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/checker"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint check: every key a translation call can produce exists in every locale document",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "Output format: text, json")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	set := s.documents(ctx)
	files, calls, err := s.calls(ctx)
	if err != nil {
		return err
	}

	c := checker.New(set, s.parser())
	c.Jobs = s.cfg.Jobs
	findings, err := c.Run(ctx, calls)
	if err != nil {
		return err
	}
	s.log.Info("check finished", "files", len(files), "calls", len(calls), "findings", len(findings))

	report := findingsReport{Run: s.runID, Files: len(files), Calls: len(calls), Findings: findings}
	if err := outputFindings(os.Stdout, report, format); err != nil {
		return err
	}
	if len(findings) > 0 {
		return fmt.Errorf("checks failed")
	}
	return nil
}
