package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Keys in the reference locale absent from the other locales",
	Args:  cobra.NoArgs,
	RunE:  runMissing,
}

func init() {
	missingCmd.Flags().String("reference", "", "Reference locale (default: first configured locale)")
	missingCmd.Flags().String("format", "text", "Output format: text, json")
}

func runMissing(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	reference, err := cmd.Flags().GetString("reference")
	if err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if reference == "" {
		reference = s.cfg.Locales[0]
	}

	gaps := findGaps(cmd.Context(), s.registry, reference, s.cfg.Locales, s.cfg.JSONBaseURIs)
	total := 0
	for _, g := range gaps {
		total += len(g.Missing)
	}
	if err := reportMissing(gaps, reference, format); err != nil {
		return err
	}
	if total > 0 {
		return fmt.Errorf("%d keys missing", total)
	}
	return nil
}

// findGaps compares, per base location, the reference locale's document
// with every other locale's document from the same location.
func findGaps(ctx context.Context, registry *locale.Registry, reference string, locales []string, locations []locale.BaseLocation) []locale.Gap {
	others := slices.DeleteFunc(slices.Clone(locales), func(l string) bool { return l == reference })
	var gaps []locale.Gap
	for _, loc := range locations {
		refSet := locale.Build(ctx, registry, []string{reference}, []locale.BaseLocation{loc})
		if refSet.Empty() {
			continue
		}
		otherSet := locale.Build(ctx, registry, others, []locale.BaseLocation{loc})
		gaps = append(gaps, otherSet.Compare(refSet.Documents[0])...)
	}
	return gaps
}

func reportMissing(gaps []locale.Gap, reference, format string) error {
	if format == "json" {
		if gaps == nil {
			gaps = []locale.Gap{}
		}
		return outputJSON(os.Stdout, gaps)
	}

	if len(gaps) == 0 {
		fmt.Printf("No documents to compare with %s.\n", reference)
		return nil
	}
	for _, g := range gaps {
		if len(g.Missing) == 0 {
			fmt.Printf("%s: no keys missing from %s\n", g.SourceID, reference)
			continue
		}
		fmt.Printf("%s: %d keys missing from %s:\n", g.SourceID, len(g.Missing), reference)
		for _, k := range g.Missing {
			fmt.Printf("  %s\n", k)
		}
	}
	return nil
}
