// Package parser extracts imported module names from source files using
// tree-sitter grammars selected by file extension.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// grammar pairs a tree-sitter language with the function that pulls import
// names out of one node of its syntax tree.
type grammar struct {
	lang    *sitter.Language
	extract func(n *sitter.Node, src []byte) []string
}

var (
	goGrammar   = grammar{golang.GetLanguage(), goImports}
	pyGrammar   = grammar{python.GetLanguage(), pythonImports}
	jsGrammar   = grammar{javascript.GetLanguage(), jsImports}
	tsGrammar   = grammar{typescript.GetLanguage(), jsImports}
	tsxGrammar  = grammar{tsx.GetLanguage(), jsImports}
	javaGrammar = grammar{java.GetLanguage(), javaImports}
	rustGrammar = grammar{rust.GetLanguage(), rustImports}
	rubyGrammar = grammar{ruby.GetLanguage(), rubyImports}
	cGrammar    = grammar{c.GetLanguage(), cIncludes}
	cppGrammar  = grammar{cpp.GetLanguage(), cIncludes}
)

// registry maps lowercased file extensions to grammars.
var registry = map[string]grammar{
	".go":   goGrammar,
	".py":   pyGrammar,
	".pyw":  pyGrammar,
	".js":   jsGrammar,
	".jsx":  jsGrammar,
	".mjs":  jsGrammar,
	".cjs":  jsGrammar,
	".ts":   tsGrammar,
	".mts":  tsGrammar,
	".tsx":  tsxGrammar,
	".java": javaGrammar,
	".rs":   rustGrammar,
	".rb":   rubyGrammar,
	".c":    cGrammar,
	".h":    cGrammar,
	".cc":   cppGrammar,
	".cpp":  cppGrammar,
	".cxx":  cppGrammar,
	".hpp":  cppGrammar,
}

// Supports reports whether filename has a registered grammar.
func Supports(filename string) bool {
	_, ok := registry[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Parser wraps a tree-sitter parser. A Parser is not safe for concurrent
// use; create one per goroutine.
type Parser struct {
	inner *sitter.Parser
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{inner: sitter.NewParser()}
}

// Imports parses source as the language implied by filename and returns
// the imported module names in source order without duplicates.
func (p *Parser) Imports(ctx context.Context, filename string, source []byte) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	g, ok := registry[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}

	p.inner.SetLanguage(g.lang)
	tree, err := p.inner.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	var out []string
	seen := make(map[string]bool)
	walk(tree.RootNode(), func(n *sitter.Node) {
		for _, name := range g.extract(n, source) {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	})
	return out, nil
}

// walk performs a depth-first traversal calling fn for each node.
func walk(node *sitter.Node, fn func(*sitter.Node)) {
	if node == nil {
		return
	}
	fn(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), fn)
	}
}

func goImports(n *sitter.Node, src []byte) []string {
	if n.Type() != "import_spec" {
		return nil
	}
	if path := n.ChildByFieldName("path"); path != nil {
		return []string{unquote(path.Content(src))}
	}
	return nil
}

func pythonImports(n *sitter.Node, src []byte) []string {
	switch n.Type() {
	case "import_statement":
		var names []string
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "dotted_name":
				names = append(names, child.Content(src))
			case "aliased_import":
				if name := child.ChildByFieldName("name"); name != nil {
					names = append(names, name.Content(src))
				}
			}
		}
		return names
	case "import_from_statement":
		if mod := n.ChildByFieldName("module_name"); mod != nil {
			return []string{mod.Content(src)}
		}
	}
	return nil
}

// jsImports handles ES module imports and CommonJS require calls.
func jsImports(n *sitter.Node, src []byte) []string {
	switch n.Type() {
	case "import_statement", "export_statement":
		if source := n.ChildByFieldName("source"); source != nil {
			return []string{unquote(source.Content(src))}
		}
	case "call_expression":
		fn := n.ChildByFieldName("function")
		if fn == nil || fn.Type() != "identifier" || fn.Content(src) != "require" {
			return nil
		}
		if arg := firstNamedOfType(n.ChildByFieldName("arguments"), "string"); arg != nil {
			return []string{unquote(arg.Content(src))}
		}
	}
	return nil
}

func javaImports(n *sitter.Node, src []byte) []string {
	if n.Type() != "import_declaration" {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
			return []string{child.Content(src)}
		}
	}
	return nil
}

func rustImports(n *sitter.Node, src []byte) []string {
	if n.Type() != "use_declaration" {
		return nil
	}
	if arg := n.ChildByFieldName("argument"); arg != nil {
		return []string{arg.Content(src)}
	}
	return nil
}

func rubyImports(n *sitter.Node, src []byte) []string {
	if n.Type() != "call" {
		return nil
	}
	method := n.ChildByFieldName("method")
	if method == nil {
		return nil
	}
	if m := method.Content(src); m != "require" && m != "require_relative" {
		return nil
	}
	if arg := firstNamedOfType(n.ChildByFieldName("arguments"), "string"); arg != nil {
		return []string{unquote(arg.Content(src))}
	}
	return nil
}

func cIncludes(n *sitter.Node, src []byte) []string {
	if n.Type() != "preproc_include" {
		return nil
	}
	if path := n.ChildByFieldName("path"); path != nil {
		return []string{strings.Trim(strings.TrimSpace(path.Content(src)), "<>\"")}
	}
	return nil
}

func firstNamedOfType(n *sitter.Node, typ string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'`")
}
