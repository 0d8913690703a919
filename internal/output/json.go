// internal/output/json.go
package output

import (
	"encoding/json"
	"errors"

	"github.com/julianshen/projinsight/internal/pipeline"
)

// JSONFormatter outputs a Report as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the Report as indented JSON.
func (f *JSONFormatter) Format(report *pipeline.Report) ([]byte, error) {
	if report == nil {
		return nil, errors.New("nil report")
	}
	return json.MarshalIndent(report, "", "  ")
}
