package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/pipeline"
)

func TestSummaryLine(t *testing.T) {
	line := summaryLine(pipeline.ProjectResult{
		Tag:            3,
		Root:           "webapp",
		Classification: classify.Result{Label: classify.LabelCoding, Confidence: 0.875},
		Languages:      []string{"TypeScript", "JavaScript"},
		Skills:         []string{"A", "B", "C", "D", "E"},
	})

	assert.Contains(t, line, "#3")
	assert.Contains(t, line, "webapp")
	assert.Contains(t, line, "coding 88%")
	assert.Contains(t, line, "TypeScript, JavaScript")
	assert.Contains(t, line, "A, B, C +2")
}

func TestSummaryLineMinimal(t *testing.T) {
	line := summaryLine(pipeline.ProjectResult{
		Tag:            1,
		Root:           ".",
		Classification: classify.Result{Label: classify.LabelUnknown},
	})
	assert.Contains(t, line, "unknown 0%")
	assert.NotContains(t, line, "+")
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	_, ok := terminalWidth(&bytes.Buffer{})
	assert.False(t, ok)
}

func TestRenderMarkdown(t *testing.T) {
	out := renderMarkdown([]byte("# Title\n\nSome text.\n"), 80)
	assert.Contains(t, string(out), "Title")
	assert.Contains(t, string(out), "Some text.")
}
