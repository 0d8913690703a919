package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/discovery"
	"github.com/julianshen/projinsight/internal/resume"
)

const paperText = `# Abstract
We study caching (Smith, 2020).

## Introduction
Prior work by Jones et al. found gains [1].

## Methodology
We ran a benchmark.

## Results
Latency dropped.

## References
[1] Jones et al.
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestAnalyzer(t *testing.T, concurrency int) (*Analyzer, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.Concurrency = concurrency
	a, err := NewAnalyzer(cfg, mock)
	require.NoError(t, err)
	return a, mock
}

func writeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "webapp", "package.json"),
		`{"dependencies": {"react": "^18.2.0", "express": "4.18.0"}}`)
	writeFile(t, filepath.Join(root, "webapp", "src", "index.js"), "import React from 'react';\n")
	writeFile(t, filepath.Join(root, "webapp", "src", "server.js"), "const express = require('express');\n")
	writeFile(t, filepath.Join(root, "paper", "README.md"), paperText)
	writeFile(t, filepath.Join(root, "paper", "notes.md"), "Some loose notes about the draft.\n")
	writeFile(t, filepath.Join(root, "loose.txt"), "not part of any project\n")
	return root
}

func TestRunOnlyIgnoreFileAndVCS(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main\n")
	writeFile(t, filepath.Join(root, ".git", "config"), "[core]\n")

	a, mock := newTestAnalyzer(t, 2)
	report, err := a.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, mock.Now(), report.GeneratedAt)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.UnownedFiles)

	require.Len(t, report.Projects, 1)
	p := report.Projects[0]
	assert.Equal(t, 1, p.Tag)
	assert.Equal(t, ".", p.Root)
	assert.Equal(t, classify.LabelUnknown, p.Classification.Label)
	assert.Empty(t, p.Languages)
	assert.Empty(t, p.Frameworks)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Documents)
	assert.Nil(t, p.Content)
	assert.Equal(t, []string{resume.FallbackBullet}, p.Resume.Bullets)
}

func TestRunMultipleProjects(t *testing.T) {
	root := writeWorkspace(t)

	a, _ := newTestAnalyzer(t, 4)
	report, err := a.Run(context.Background(), Request{
		Root: root,
		Contributors: []resume.Contributor{
			{Name: "Jane Doe", Email: "jane@example.com", Commits: 30, LinesAdded: 900},
			{Name: "Bob Smith", Email: "bob@example.com", Commits: 50},
		},
		UserName:  "Jane",
		AISummary: "summary from elsewhere",
		SendToLLM: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "summary from elsewhere", report.AISummary)
	assert.True(t, report.SendToLLM)
	assert.Equal(t, []string{"loose.txt"}, report.UnownedFiles)
	require.Len(t, report.Projects, 2)

	paper := report.Projects[0]
	assert.Equal(t, 1, paper.Tag)
	assert.Equal(t, "paper", paper.Root)
	require.Len(t, paper.Documents, 2)
	assert.Equal(t, "README.md", paper.Documents[0].Path)
	assert.Equal(t, content.ResearchPaper, paper.Documents[0].Analysis.DocumentType)
	require.NotNil(t, paper.Content)
	assert.Equal(t, 2, paper.Content.TotalDocuments)
	assert.Contains(t, paper.Skills, "Academic Research")
	assert.Contains(t, paper.Skills, "Research Methodology")

	web := report.Projects[1]
	assert.Equal(t, 2, web.Tag)
	assert.Equal(t, "webapp", web.Root)
	assert.Equal(t, classify.LabelCoding, web.Classification.Label)
	assert.Equal(t, []string{"JavaScript"}, web.Languages)
	assert.Contains(t, web.Frameworks, "React")
	assert.Contains(t, web.Frameworks, "Express")
	assert.Contains(t, web.Skills, "Full-Stack Development")
	assert.NotContains(t, web.Skills, "Backend Development")
	assert.NotContains(t, web.Skills, "React")
	assert.Nil(t, web.Content)

	for _, p := range report.Projects {
		for _, b := range p.Resume.Bullets {
			assert.False(t, strings.HasPrefix(b, "Authored"), "project %s: %s", p.Root, b)
			assert.False(t, strings.HasPrefix(b, "Contributed to a codebase"), "project %s: %s", p.Root, b)
		}
	}
}

func TestRunSingleProjectGetsContributionBullet(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/svc\n")
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")

	a, _ := newTestAnalyzer(t, 2)
	report, err := a.Run(context.Background(), Request{
		Root: root,
		Contributors: []resume.Contributor{
			{Name: "Jane Doe", Email: "jane@example.com", Commits: 30, LinesAdded: 900},
			{Name: "Bob Smith", Email: "bob@example.com", Commits: 50},
		},
		UserName: "Jane",
	})
	require.NoError(t, err)
	require.Len(t, report.Projects, 1)

	var contribution string
	for _, b := range report.Projects[0].Resume.Bullets {
		if strings.HasPrefix(b, "Authored") {
			contribution = b
		}
	}
	assert.Contains(t, contribution, "37.5%")
	assert.Contains(t, contribution, "30 commits")
}

func TestRunThroughSymlinkedRoot(t *testing.T) {
	real := t.TempDir()
	writeFile(t, filepath.Join(real, "requirements.txt"), "flask==3.0\n")
	writeFile(t, filepath.Join(real, "app.py"), "from flask import Flask\napp = Flask(__name__)\n")
	writeFile(t, filepath.Join(real, "views", "home.py"), "from flask import render_template\n")

	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	a, _ := newTestAnalyzer(t, 2)
	direct, err := a.Run(context.Background(), Request{Root: real})
	require.NoError(t, err)
	linked, err := a.Run(context.Background(), Request{Root: link})
	require.NoError(t, err)

	assert.Equal(t, direct.Root, linked.Root)
	require.Len(t, linked.Projects, 1)
	p := linked.Projects[0]
	assert.Equal(t, 1, p.Tag)
	assert.Equal(t, classify.LabelCoding, p.Classification.Label)
	assert.Equal(t, []string{"Python"}, p.Languages)
	assert.Contains(t, p.Frameworks, "Flask")
	assert.Equal(t, direct.Projects, linked.Projects)
}

func TestRunIgnoredDirectoryHoldsNoProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "generated/\n")
	writeFile(t, filepath.Join(root, "generated", "client", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "generated", "client", "index.js"), "module.exports = 1\n")
	writeFile(t, filepath.Join(root, "api", "go.mod"), "module api\n")
	writeFile(t, filepath.Join(root, "api", "main.go"), "package main\n")

	a, _ := newTestAnalyzer(t, 2)
	report, err := a.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)

	require.Len(t, report.Projects, 1)
	assert.Equal(t, "api", report.Projects[0].Root)
	assert.Contains(t, report.UnownedFiles, "generated/client/index.js")
}

func TestRunWithoutBoundariesAnalyzesRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.py"), "import os\n")
	writeFile(t, filepath.Join(root, "lib", "b.py"), "import sys\n")

	a, _ := newTestAnalyzer(t, 1)
	report, err := a.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)

	require.Len(t, report.Projects, 1)
	p := report.Projects[0]
	assert.Equal(t, discovery.UnownedTag, p.Tag)
	assert.Equal(t, ".", p.Root)
	assert.Equal(t, []string{"Python"}, p.Languages)
	assert.Equal(t, classify.LabelCoding, p.Classification.Label)
	assert.Equal(t, 1, p.Classification.Features.FolderHistogram["lib"])
	assert.Empty(t, report.UnownedFiles)
}

func TestRunIsIndependentOfConcurrency(t *testing.T) {
	root := writeWorkspace(t)

	seq, _ := newTestAnalyzer(t, 1)
	par, _ := newTestAnalyzer(t, 8)

	want, err := seq.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)
	got, err := par.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)

	assert.Equal(t, want.Projects, got.Projects)
	assert.Equal(t, want.UnownedFiles, got.UnownedFiles)
	assert.NotEqual(t, want.ID, got.ID)
}

func TestRunReportsDegradedFilesAsWarnings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "hello\n")
	writeFile(t, filepath.Join(root, "bad.txt"), "\xff\xfe\xfd")

	a, _ := newTestAnalyzer(t, 2)
	report, err := a.Run(context.Background(), Request{Root: root})
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "bad.txt")
	require.Len(t, report.Projects, 1)
}

func TestRunErrors(t *testing.T) {
	a, _ := newTestAnalyzer(t, 1)
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	_, err := a.Run(context.Background(), Request{})
	assert.Error(t, err)

	_, err = a.Run(context.Background(), Request{Root: filepath.Join(dir, "missing")})
	assert.Error(t, err)

	_, err = a.Run(context.Background(), Request{Root: file})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Run(ctx, Request{Root: dir})
	assert.ErrorIs(t, err, context.Canceled)
}
