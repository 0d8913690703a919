// internal/output/markdown.go
package output

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/pipeline"
)

// MarkdownFormatter outputs a Report as human-readable Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the Report as Markdown.
func (f *MarkdownFormatter) Format(report *pipeline.Report) ([]byte, error) {
	if report == nil {
		return nil, errors.New("nil report")
	}
	var b strings.Builder

	b.WriteString("# Project Analysis\n\n")
	fmt.Fprintf(&b, "Root: `%s`\n", report.Root)

	if len(report.Projects) == 0 {
		b.WriteString("\nNo projects found.\n")
	}
	for _, p := range report.Projects {
		writeProject(&b, p)
	}

	if len(report.UnownedFiles) > 0 {
		b.WriteString("\n## Unowned Files\n\n")
		for _, f := range report.UnownedFiles {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	if report.AISummary != "" {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(strings.TrimSpace(report.AISummary))
		b.WriteString("\n")
	}

	projectLabel := "projects"
	if len(report.Projects) == 1 {
		projectLabel = "project"
	}
	fmt.Fprintf(&b, "\n---\n*%d %s analyzed at %s (run %s)*\n",
		len(report.Projects), projectLabel, report.GeneratedAt.UTC().Format(time.RFC3339), report.ID)

	return []byte(b.String()), nil
}

// typeLabel spells out a mixed label such as "mixed:coding+writing".
func typeLabel(c classify.Result) string {
	if !c.IsMixed() {
		return c.Label
	}
	_, pair, _ := strings.Cut(c.Label, ":")
	first, second, _ := strings.Cut(pair, "+")
	return fmt.Sprintf("mixed (%s and %s)", first, second)
}

func writeProject(b *strings.Builder, p pipeline.ProjectResult) {
	fmt.Fprintf(b, "\n## Project %d: %s\n\n", p.Tag, p.Root)
	fmt.Fprintf(b, "**Type:** %s (confidence %.2f)\n", typeLabel(p.Classification), p.Classification.Confidence)

	writeList(b, "Languages", p.Languages)
	writeList(b, "Frameworks", p.Frameworks)
	writeList(b, "Skills", p.Skills)

	if p.Content != nil {
		writeContent(b, p.Content)
	}

	if len(p.Resume.Bullets) > 0 {
		b.WriteString("\n### Resume Bullets\n\n")
		for _, bullet := range p.Resume.Bullets {
			fmt.Fprintf(b, "- %s\n", bullet)
		}
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:** %s\n", title, strings.Join(items, ", "))
}

func writeContent(b *strings.Builder, sum *content.Summary) {
	b.WriteString("\n### Documents\n\n")
	docLabel := "documents"
	if sum.TotalDocuments == 1 {
		docLabel = "document"
	}
	fmt.Fprintf(b, "%d %s, %d words, about %d min read. Mostly %s, %s style, %s complexity.\n",
		sum.TotalDocuments, docLabel, sum.TotalWords, sum.TotalReadTime,
		humanize(string(sum.PrimaryType)), sum.PrimaryStyle, sum.PrimaryComplexity)
	if len(sum.Topics) > 0 {
		fmt.Fprintf(b, "\nTopics: %s\n", strings.Join(sum.Topics, ", "))
	}
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
