// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Column names the catalog export must carry in its header row.
const (
	ColumnDateAdded = "Date Added"
	ColumnTitle     = "Title"
	ColumnAuthor    = "Author"
	ColumnAuthorLF  = "Author l-f"
)

// RequiredColumns lists the header columns every catalog must contain.
var RequiredColumns = []string{ColumnDateAdded, ColumnTitle, ColumnAuthor, ColumnAuthorLF}

// Record is one parsed catalog row keyed by header column name.
type Record map[string]string

// Book holds the fields derived from a Record that appear in a document.
type Book struct {
	// Title is the raw Title column.
	Title string `json:"title" yaml:"title"`

	// AuthorFirstName is the Author column up to its first comma.
	AuthorFirstName string `json:"author_first_name" yaml:"author_first_name"`

	// AuthorLastName is the "Author l-f" column up to its first comma.
	AuthorLastName string `json:"author_last_name" yaml:"author_last_name"`

	// Year is the "Date Added" column up to its first slash.
	Year string `json:"year" yaml:"year"`

	// Row is the data row the book came from (header is row 1).
	Row int `json:"-" yaml:"-"`
}

// RunSummary describes the outcome of one conversion run.
type RunSummary struct {
	Input     string `json:"input" yaml:"input"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Written   int    `json:"written" yaml:"written"`
	// Overwritten counts records whose document replaced one written
	// earlier in the same run.
	Overwritten int      `json:"overwritten" yaml:"overwritten"`
	Filtered    int      `json:"filtered" yaml:"filtered"`
	Files       []string `json:"files" yaml:"files"`
}

// Total returns the number of records read.
func (s RunSummary) Total() int {
	return s.Written + s.Overwritten + s.Filtered
}
