package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
)

func TestOutputFindings(t *testing.T) {
	color.NoColor = true

	loc := finding.Location{File: "app.js", Line: 3, Column: 5}
	report := findingsReport{
		Run:   "run1",
		Files: 2,
		Calls: 4,
		Findings: []finding.Finding{
			finding.InvalidSource("Error reading or parsing: /x/de.json boom"),
			finding.MissingKey("a.b", "/x/en.json").At(loc),
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputFindings(&buf, report, "text"))
		assert.Equal(t, "Found 2 problems:\n"+
			"  -  Invalid JSON source: Error reading or parsing: /x/de.json boom\n"+
			"  app.js:3:5  Missing key: a.b in JSON: /x/en.json\n", buf.String())
	})

	t.Run("text without findings", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputFindings(&buf, findingsReport{Files: 2, Calls: 4}, "text"))
		assert.Equal(t, "No problems found in 4 calls across 2 files.\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputFindings(&buf, report, "json"))
		var got findingsReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "run1", got.Run)
		require.Len(t, got.Findings, 2)
		assert.Equal(t, finding.KindMissingKey, got.Findings[1].Kind)
		assert.Equal(t, loc, got.Findings[1].Location)
	})

	t.Run("json without findings", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputFindings(&buf, findingsReport{Run: "run2"}, "json"))
		assert.Contains(t, buf.String(), `"findings": []`)
	})
}
