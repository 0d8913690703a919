// Package store persists analysis reports in a SQL database. SQLite is the
// default; MySQL and PostgreSQL (through pgx) are supported for shared
// history.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/julianshen/projinsight/internal/pipeline"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// Run is the summary row of one saved report.
type Run struct {
	ID           string
	Root         string
	GeneratedAt  time.Time
	ProjectCount int
	WarningCount int
}

// ProjectRow is the indexed summary of one saved project.
type ProjectRow struct {
	RunID      string
	Tag        int
	Root       string
	Label      string
	Confidence float64
}

// Store wraps a database holding saved reports.
type Store struct {
	db      *sql.DB
	driver  string
	dialect dialect
}

type dialect struct {
	text     string
	longText string
	key      string
}

var dialects = map[string]dialect{
	DriverSQLite:   {text: "TEXT", longText: "TEXT", key: "TEXT"},
	DriverMySQL:    {text: "VARCHAR(1024)", longText: "LONGTEXT", key: "VARCHAR(64)"},
	DriverPostgres: {text: "TEXT", longText: "TEXT", key: "TEXT"},
}

// Open connects to the database named by driver and dsn and ensures the
// tables exist. For sqlite, use ":memory:" for an in-memory database.
func Open(driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db, driver: driver, dialect: d}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	d := s.dialect
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id            ` + d.key + ` PRIMARY KEY,
			root          ` + d.text + ` NOT NULL,
			generated_at  VARCHAR(40) NOT NULL,
			project_count INTEGER NOT NULL,
			warning_count INTEGER NOT NULL,
			report        ` + d.longText + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS project_results (
			run_id     ` + d.key + ` NOT NULL,
			tag        INTEGER NOT NULL,
			root       ` + d.text + ` NOT NULL,
			label      VARCHAR(64) NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (run_id, tag)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SaveReport stores r and one indexed row per project. Saving a report
// with an existing ID replaces it.
func (s *Store) SaveReport(r *pipeline.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("report with an ID is required")
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(s.rebind(`DELETE FROM project_results WHERE run_id = ?`), r.ID); err != nil {
		return fmt.Errorf("clear project results: %w", err)
	}
	if _, err := tx.Exec(s.rebind(`DELETE FROM analysis_runs WHERE id = ?`), r.ID); err != nil {
		return fmt.Errorf("clear run: %w", err)
	}
	_, err = tx.Exec(s.rebind(
		`INSERT INTO analysis_runs (id, root, generated_at, project_count, warning_count, report)
		 VALUES (?, ?, ?, ?, ?, ?)`),
		r.ID, r.Root, r.GeneratedAt.UTC().Format(timeLayout), len(r.Projects), len(r.Warnings), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, p := range r.Projects {
		_, err := tx.Exec(s.rebind(
			`INSERT INTO project_results (run_id, tag, root, label, confidence)
			 VALUES (?, ?, ?, ?, ?)`),
			r.ID, p.Tag, p.Root, p.Classification.Label, p.Classification.Confidence,
		)
		if err != nil {
			return fmt.Errorf("insert project %d: %w", p.Tag, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit report: %w", err)
	}
	return nil
}

// GetReport returns the saved report with the given ID, or ErrNotFound.
func (s *Store) GetReport(id string) (*pipeline.Report, error) {
	var payload string
	err := s.db.QueryRow(s.rebind(`SELECT report FROM analysis_runs WHERE id = ?`), id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	var r pipeline.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}

// ListRuns returns saved runs, newest first. An empty root lists runs of
// every root; a limit of zero or less returns all of them.
func (s *Store) ListRuns(root string, limit int) ([]Run, error) {
	query := `SELECT id, root, generated_at, project_count, warning_count FROM analysis_runs`
	var args []any
	if root != "" {
		query += ` WHERE root = ?`
		args = append(args, root)
	}
	query += ` ORDER BY generated_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var at string
		if err := rows.Scan(&run.ID, &run.Root, &at, &run.ProjectCount, &run.WarningCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.GeneratedAt, err = time.Parse(timeLayout, at); err != nil {
			return nil, fmt.Errorf("parse run time %q: %w", at, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListProjects returns the project rows of a saved run in tag order.
func (s *Store) ListProjects(runID string) ([]ProjectRow, error) {
	rows, err := s.db.Query(s.rebind(
		`SELECT run_id, tag, root, label, confidence
		 FROM project_results WHERE run_id = ? ORDER BY tag`), runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectRow
	for rows.Next() {
		var p ProjectRow
		if err := rows.Scan(&p.RunID, &p.Tag, &p.Root, &p.Label, &p.Confidence); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteRun removes a saved run and its project rows.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(s.rebind(`DELETE FROM project_results WHERE run_id = ?`), id); err != nil {
		return fmt.Errorf("delete project results: %w", err)
	}
	res, err := tx.Exec(s.rebind(`DELETE FROM analysis_runs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
