package detect

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/parser"
	"github.com/julianshen/projinsight/internal/scan"
)

// Import patterns for languages without a registered grammar.
var (
	jvmImportRe   = regexp.MustCompile(`(?m)^\s*import\s+(?:static\s+)?([A-Za-z_][\w.]*)`)
	swiftImportRe = regexp.MustCompile(`(?m)^\s*(?:@testable\s+)?import\s+(?:(?:class|struct|enum|protocol|func|var|let|typealias)\s+)?([A-Za-z_]\w*)`)
	dartImportRe  = regexp.MustCompile(`(?m)^\s*import\s+['"]package:(\w+)/`)
	phpUseRe      = regexp.MustCompile(`(?m)^\s*use\s+\\?([A-Za-z_]\w*)\\`)
	csharpUsingRe = regexp.MustCompile(`(?m)^\s*(?:global\s+)?using\s+(?:static\s+)?([A-Za-z_][\w.]*)\s*;`)
)

// importResolver maps one imported name to a framework.
type importResolver func(name string) string

// resolverFor returns the import resolver for a file extension.
func resolverFor(ext string) importResolver {
	switch ext {
	case ".go":
		return prefixLookup(goModules, "/")
	case ".py", ".pyw":
		return pythonModule
	case ".js", ".jsx", ".mjs", ".cjs", ".ts", ".mts", ".tsx":
		return npmModule
	case ".java", ".kt", ".kts", ".scala":
		return prefixLookup(jvmPackages, ".")
	case ".rs":
		return rustModule
	case ".rb":
		return rubyModule
	case ".c", ".h", ".cc", ".cpp", ".cxx", ".hpp":
		return cHeader
	case ".php":
		return phpModule
	case ".cs":
		return prefixLookup(dotnetPackages, ".")
	case ".dart":
		return lookup(dartPackages)
	case ".swift":
		return swiftLookup
	}
	return nil
}

// regexFor returns the import pattern for languages scanned without a
// grammar.
func regexFor(ext string) *regexp.Regexp {
	switch ext {
	case ".kt", ".kts", ".scala":
		return jvmImportRe
	case ".swift":
		return swiftImportRe
	case ".dart":
		return dartImportRe
	case ".php":
		return phpUseRe
	case ".cs":
		return csharpUsingRe
	}
	return nil
}

// scanImports extracts the imports of one source file and resolves them to
// frameworks. Shell scripts are scanned for the commands they run instead.
func scanImports(ctx context.Context, psr *parser.Parser, f scan.FileRecord) []FrameworkSignal {
	if f.Text == "" {
		return nil
	}
	ext := filetype.Ext(f.RelPath)
	if isShellScript(ext) {
		return scanShell(f)
	}

	resolve := resolverFor(ext)
	if resolve == nil {
		return nil
	}

	var names []string
	if parser.Supports(f.RelPath) {
		imports, err := psr.Imports(ctx, path.Base(f.RelPath), []byte(f.Text))
		if err != nil {
			return nil
		}
		names = imports
	} else if re := regexFor(ext); re != nil {
		for _, m := range re.FindAllStringSubmatch(f.Text, -1) {
			names = append(names, m[1])
		}
	}

	var out []FrameworkSignal
	for _, name := range names {
		if fw := resolve(name); fw != "" {
			out = append(out, FrameworkSignal{Name: fw, Source: SourceImport, File: f.RelPath})
		}
	}
	return out
}

func pythonModule(name string) string {
	if strings.HasPrefix(name, ".") {
		return ""
	}
	top, _, _ := strings.Cut(name, ".")
	return pythonLookup(top)
}

// npmModule resolves a module specifier to its package: "@scope/pkg/sub"
// to "@scope/pkg" and "pkg/sub" to "pkg". Relative specifiers resolve to
// nothing.
func npmModule(spec string) string {
	if spec == "" || strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/") {
		return ""
	}
	parts := strings.Split(spec, "/")
	pkg := parts[0]
	if strings.HasPrefix(pkg, "@") && len(parts) > 1 {
		pkg += "/" + parts[1]
	}
	return npmPackages[strings.ToLower(pkg)]
}

func rustModule(use string) string {
	top, _, _ := strings.Cut(use, "::")
	return rustLookup(strings.TrimSpace(top))
}

func rubyModule(req string) string {
	top, _, _ := strings.Cut(req, "/")
	return rubyGems[strings.ToLower(top)]
}

func cHeader(include string) string {
	top, _, _ := strings.Cut(strings.ToLower(include), "/")
	top = strings.TrimSuffix(strings.TrimSuffix(top, ".hpp"), ".h")
	return cHeaders[top]
}

func phpModule(ns string) string {
	return phpNamespaces[strings.ToLower(ns)]
}
