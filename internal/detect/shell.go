package detect

import (
	"path"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/julianshen/projinsight/internal/scan"
)

func isShellScript(ext string) bool {
	switch ext {
	case ".sh", ".bash", ".zsh", ".ksh":
		return true
	}
	return false
}

// scanShell parses a shell script and reports the infrastructure tools it
// invokes. Scripts that do not parse contribute nothing.
func scanShell(f scan.FileRecord) []FrameworkSignal {
	file, err := syntax.NewParser().Parse(strings.NewReader(f.Text), path.Base(f.RelPath))
	if err != nil {
		return nil
	}

	var out []FrameworkSignal
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		for _, fw := range commandFrameworks(call.Args) {
			out = append(out, FrameworkSignal{Name: fw, Source: SourceImport, File: f.RelPath})
		}
		return true
	})
	return out
}

// commandFrameworks maps a command line to the tools it runs. Wrappers such
// as sudo and env are looked through, and `docker compose` counts as
// Docker Compose as well as Docker.
func commandFrameworks(args []*syntax.Word) []string {
	words := make([]string, 0, len(args))
	for _, w := range args {
		words = append(words, w.Lit())
	}

	for len(words) > 0 && isCommandWrapper(words[0]) {
		words = words[1:]
	}
	if len(words) == 0 || words[0] == "" {
		return nil
	}

	fw, ok := shellCommands[path.Base(words[0])]
	if !ok {
		return nil
	}
	out := []string{fw}
	if fw == "Docker" && len(words) > 1 && words[1] == "compose" {
		out = append(out, "Docker Compose")
	}
	return out
}

func isCommandWrapper(word string) bool {
	switch word {
	case "sudo", "exec", "command", "env", "time", "nohup":
		return true
	}
	return strings.Contains(word, "=")
}
