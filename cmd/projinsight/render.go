// cmd/projinsight/render.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/pipeline"
)

const (
	defaultWidth = 100
	maxSkills    = 3
)

var (
	tagStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#8B87FF"})
	rootStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	labelStyles = map[string]lipgloss.Style{
		classify.LabelCoding:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2E9E5B")),
		classify.LabelWriting: lipgloss.NewStyle().Foreground(lipgloss.Color("#C98A00")),
		classify.LabelArt:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C2418C")),
	}
)

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth, true
	}
	return width, true
}

// renderMarkdown styles md for the terminal, returning it unchanged when
// rendering fails.
func renderMarkdown(md []byte, width int) []byte {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return md
	}
	return out
}

// summaryLine renders a one-line overview of a project.
func summaryLine(p pipeline.ProjectResult) string {
	label := p.Classification.Label
	style, ok := labelStyles[label]
	if !ok {
		style = mutedStyle
	}

	parts := []string{
		tagStyle.Render(fmt.Sprintf("#%d", p.Tag)),
		rootStyle.Render(p.Root),
		style.Render(fmt.Sprintf("%s %.0f%%", label, p.Classification.Confidence*100)),
	}
	if len(p.Languages) > 0 {
		parts = append(parts, mutedStyle.Render(strings.Join(p.Languages, ", ")))
	}
	if n := len(p.Skills); n > 0 {
		shown := p.Skills[:min(n, maxSkills)]
		text := strings.Join(shown, ", ")
		if n > maxSkills {
			text += fmt.Sprintf(" +%d", n-maxSkills)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "  ")
}
