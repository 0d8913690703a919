package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	assert.True(t, Supports("main.go"))
	assert.True(t, Supports("App.TSX"))
	assert.True(t, Supports("lib.hpp"))
	assert.False(t, Supports("Main.kt"))
	assert.False(t, Supports("README.md"))
}

func TestImportsUnsupportedExtension(t *testing.T) {
	_, err := NewParser().Imports(context.Background(), "file.xyz", []byte("content"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestImports(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		source   string
		want     []string
	}{
		{
			name:     "go grouped imports",
			filename: "main.go",
			source: `package main

import (
	"fmt"
	gin "github.com/gin-gonic/gin"
)

func main() { fmt.Println(gin.Version) }
`,
			want: []string{"fmt", "github.com/gin-gonic/gin"},
		},
		{
			name:     "python import and from import",
			filename: "train.py",
			source: `import os, numpy as np
from sklearn.model_selection import train_test_split
import torch
`,
			want: []string{"os", "numpy", "sklearn.model_selection", "torch"},
		},
		{
			name:     "javascript es modules and require",
			filename: "index.js",
			source: `import React from 'react';
import 'polyfill';
const express = require("express");
`,
			want: []string{"react", "polyfill", "express"},
		},
		{
			name:     "typescript",
			filename: "app.ts",
			source:   "import { Component } from '@angular/core';\n",
			want:     []string{"@angular/core"},
		},
		{
			name:     "tsx",
			filename: "App.tsx",
			source: `import { useState } from "react";
export default function App() { return <div />; }
`,
			want: []string{"react"},
		},
		{
			name:     "java",
			filename: "App.java",
			source: `import org.springframework.boot.SpringApplication;
import java.util.List;
class App {}
`,
			want: []string{"org.springframework.boot.SpringApplication", "java.util.List"},
		},
		{
			name:     "rust",
			filename: "main.rs",
			source:   "use tokio::runtime;\nuse serde::Deserialize;\nfn main() {}\n",
			want:     []string{"tokio::runtime", "serde::Deserialize"},
		},
		{
			name:     "ruby",
			filename: "app.rb",
			source:   "require 'sinatra'\nrequire_relative 'helpers'\nputs 'hi'\n",
			want:     []string{"sinatra", "helpers"},
		},
		{
			name:     "c includes",
			filename: "main.c",
			source:   "#include <stdio.h>\n#include \"local.h\"\nint main(void) { return 0; }\n",
			want:     []string{"stdio.h", "local.h"},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Imports(context.Background(), tt.filename, []byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportsDeduplicates(t *testing.T) {
	src := []byte("import os\nimport os\nfrom os import path\n")
	got, err := NewParser().Imports(context.Background(), "dup.py", src)
	require.NoError(t, err)
	assert.Equal(t, []string{"os"}, got)
}
