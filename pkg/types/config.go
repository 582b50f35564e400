// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CollisionPolicy decides what happens when two records in one run map to
// the same output filename.
type CollisionPolicy string

const (
	// CollisionOverwrite lets the later record replace the earlier document.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionFail aborts the run on the first collision.
	CollisionFail CollisionPolicy = "fail"
	// CollisionSuffix appends _2, _3, ... to the later filename.
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy validates s as a CollisionPolicy. Empty means overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(s); p {
	case "":
		return CollisionOverwrite, nil
	case CollisionOverwrite, CollisionFail, CollisionSuffix:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported collision policy %q: use overwrite, fail, or suffix", s)
	}
}

// ReportFormat selects how the run summary is printed.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// InputPath is the CSV catalog export to read.
	InputPath string `json:"input" yaml:"input" mapstructure:"input"`

	// OutputDir receives one document per selected record. Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// YearPrefix selects records whose Date Added starts with it (default "2023").
	YearPrefix string `json:"year_prefix" yaml:"year_prefix" mapstructure:"year_prefix"`

	// OnCollision is the filename collision policy (default overwrite).
	OnCollision CollisionPolicy `json:"on_collision" yaml:"on_collision" mapstructure:"on_collision"`

	// Report selects the summary format printed after the run.
	Report ReportFormat `json:"report" yaml:"report" mapstructure:"report"`
}

// Default values for ConvertConfig.
const (
	DefaultInputPath  = "books.csv"
	DefaultOutputDir  = "_books"
	DefaultYearPrefix = "2023"
)
