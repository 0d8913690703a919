// cmd/projinsight/analyze.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/julianshen/projinsight/internal/config"
	"github.com/julianshen/projinsight/internal/output"
	"github.com/julianshen/projinsight/internal/pipeline"
	"github.com/julianshen/projinsight/internal/resume"
)

type analyzeOptions struct {
	format       string
	user         string
	email        string
	contributors string
	timestamps   string
	aiSummary    string
	sendToLLM    bool
	save         bool
}

func analyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a folder of projects",
		Long:  heredoc.Doc(`
			Scan a folder, split it into projects and report each project's type,
			languages, frameworks, skills, documents and resume bullets.

			Contributor statistics and archive timestamps come from JSON files:
			  --contributors  [{"name": "...", "email": "...", "commits": 12, "lines_added": 340}]
			  --timestamps    {"src/main.go": "2024-05-01T10:00:00Z"}
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runAnalyze(cmd, cfg, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", output.FormatMarkdown, "output format: json, markdown")
	cmd.Flags().StringVar(&opts.user, "user", "", "your name as it appears in commit history")
	cmd.Flags().StringVar(&opts.email, "email", "", "your commit email")
	cmd.Flags().StringVar(&opts.contributors, "contributors", "", "JSON file of contributor statistics")
	cmd.Flags().StringVar(&opts.timestamps, "timestamps", "", "JSON file of archive modification times")
	cmd.Flags().StringVar(&opts.aiSummary, "ai-summary", "", "file holding a precomputed summary to include")
	cmd.Flags().BoolVar(&opts.sendToLLM, "send-to-llm", false, "mark the report as approved for LLM processing")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the report to the history database")

	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, dir string, opts analyzeOptions) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	formatter, err := output.New(opts.format)
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Root:      dir,
		UserName:  firstNonEmpty(opts.user, cfg.Resume.UserName),
		UserEmail: firstNonEmpty(opts.email, cfg.Resume.UserEmail),
		SendToLLM: opts.sendToLLM,
	}
	if req.Contributors, err = readContributors(opts.contributors); err != nil {
		return err
	}
	if req.Timestamps, err = readTimestamps(opts.timestamps); err != nil {
		return err
	}
	if req.AISummary, err = config.LoadAISummary(opts.aiSummary); err != nil {
		return err
	}

	analyzer, err := pipeline.NewAnalyzer(cfg.Pipeline(), nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "projinsight: scanning %s...\n", dir)
	report, err := analyzer.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", dir, err)
	}

	out, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	if _, ok := formatter.(*output.MarkdownFormatter); ok {
		if width, ok := terminalWidth(stdout); ok {
			out = renderMarkdown(out, width)
		}
	}
	if _, err := stdout.Write(out); err != nil {
		return err
	}

	for _, p := range report.Projects {
		fmt.Fprintln(stderr, summaryLine(p))
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(stderr, "projinsight: warning: %s\n", w)
	}

	if opts.save {
		if err := saveReport(cfg, report); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "projinsight: saved run %s\n", report.ID)
	}
	return nil
}

func readContributors(path string) ([]resume.Contributor, error) {
	if path == "" {
		return nil, nil
	}
	var contributors []resume.Contributor
	if err := readJSON(path, &contributors); err != nil {
		return nil, fmt.Errorf("reading contributors: %w", err)
	}
	return contributors, nil
}

func readTimestamps(path string) (map[string]time.Time, error) {
	if path == "" {
		return nil, nil
	}
	var stamps map[string]time.Time
	if err := readJSON(path, &stamps); err != nil {
		return nil, fmt.Errorf("reading timestamps: %w", err)
	}
	return stamps, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
