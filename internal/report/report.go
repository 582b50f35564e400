// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints a conversion run summary in a machine-readable form.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// ParseFormat validates s as a report format. Empty means text.
func ParseFormat(s string) (types.ReportFormat, error) {
	switch f := types.ReportFormat(s); f {
	case "":
		return types.ReportText, nil
	case types.ReportText, types.ReportYAML, types.ReportJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format %q: use text, yaml, or json", s)
	}
}

// Write encodes s to w. The text format writes nothing because the converter
// already printed its summary line.
func Write(w io.Writer, s types.RunSummary, format types.ReportFormat) error {
	if s.Files == nil {
		s.Files = []string{}
	}
	switch format {
	case types.ReportText, "":
		return nil
	case types.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return enc.Close()
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding JSON report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}
