// cmd/projinsight/history.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/julianshen/projinsight/internal/config"
	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/output"
	"github.com/julianshen/projinsight/internal/pipeline"
	"github.com/julianshen/projinsight/internal/store"
)

func historyCmd() *cobra.Command {
	var (
		limitFlag  int
		showFlag   string
		deleteFlag string
		formatFlag string
		allFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "List saved analysis runs",
		Long:  `List runs saved with "analyze --save", newest first. With --show, print
a saved report instead; with --delete, remove one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			if showFlag != "" {
				return showRun(cmd, s, showFlag, formatFlag)
			}
			if deleteFlag != "" {
				if err := s.DeleteRun(deleteFlag); err != nil {
					return fmt.Errorf("deleting run %s: %w", deleteFlag, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s.\n", deleteFlag)
				return nil
			}

			root := ""
			if !allFlag {
				dir := "."
				if len(args) > 0 {
					dir = args[0]
				}
				if root, err = filetype.Resolve(dir); err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
			}
			runs, err := s.ListRuns(root, limitFlag)
			if err != nil {
				return err
			}
			return printRuns(cmd, s, runs)
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "maximum runs to list (0 = all)")
	cmd.Flags().StringVar(&showFlag, "show", "", "print the saved report with this run ID")
	cmd.Flags().StringVar(&deleteFlag, "delete", "", "remove the saved run with this run ID")
	cmd.Flags().StringVar(&formatFlag, "format", output.FormatMarkdown, "output format for --show: json, markdown")
	cmd.Flags().BoolVar(&allFlag, "all", false, "list runs of every root")
	cmd.MarkFlagsMutuallyExclusive("show", "delete")

	return cmd
}

func showRun(cmd *cobra.Command, s *store.Store, id, format string) error {
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	report, err := s.GetReport(id)
	if err != nil {
		return fmt.Errorf("loading run %s: %w", id, err)
	}
	out, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func printRuns(cmd *cobra.Command, s *store.Store, runs []store.Run) error {
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No saved runs.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGENERATED\tPROJECTS\tWARNINGS\tTYPES\tROOT")
	for _, r := range runs {
		projects, err := s.ListProjects(r.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID, r.GeneratedAt.Local().Format(time.DateTime), r.ProjectCount, r.WarningCount, projectTypes(projects), r.Root)
	}
	return w.Flush()
}

// projectTypes lists the distinct labels of a run's projects in tag order.
func projectTypes(projects []store.ProjectRow) string {
	var labels []string
	seen := make(map[string]bool)
	for _, p := range projects {
		if !seen[p.Label] {
			seen[p.Label] = true
			labels = append(labels, p.Label)
		}
	}
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ",")
}

// openStore opens the history database, creating the directory of a
// file-backed SQLite database.
func openStore(cfg *config.Config) (*store.Store, error) {
	dsn := cfg.Store.DSN
	if cfg.Store.Driver == store.DriverSQLite && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	s, err := store.Open(cfg.Store.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return s, nil
}

func saveReport(cfg *config.Config, report *pipeline.Report) error {
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveReport(report); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}
