// internal/output/formatter.go
package output

import (
	"fmt"
	"strings"

	"github.com/julianshen/projinsight/internal/pipeline"
)

// Supported output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formatter formats a Report into output bytes.
type Formatter interface {
	Format(report *pipeline.Report) ([]byte, error)
}

// New returns the formatter for the named format.
func New(format string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatMarkdown, "md":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatJSON, FormatMarkdown)
	}
}
