// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads a CSV export of a book catalog one record at a time
// and derives the per-book fields used in rendered documents.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/bookshelf/pkg/types"
)

const utf8BOM = "\ufeff"

// Reader yields catalog records in file order. It is single-pass.
type Reader struct {
	csv    *csv.Reader
	closer io.Closer
	header []string
	row    int
}

// Open opens the catalog at path and validates its header row.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: opening %s: %v", ErrInputUnreadable, path, err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader reads a catalog from r. The header row is consumed and checked
// for the required columns before NewReader returns.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &RecordError{Kind: ErrMalformedRecord, Row: 1, Err: errors.New("missing header row")}
		}
		return nil, readError(err, 1)
	}
	header = append([]string(nil), header...)
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, &RecordError{
			Kind: ErrMalformedRecord,
			Row:  1,
			Err:  fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", ")),
		}
	}

	return &Reader{csv: cr, header: header, row: 1}, nil
}

// Header returns the column names from the header row.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next record and its row number, or io.EOF after the last row.
func (r *Reader) Next() (types.Record, int, error) {
	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, io.EOF
		}
		return nil, r.row + 1, readError(err, r.row+1)
	}
	r.row++

	rec := make(types.Record, len(r.header))
	for i, name := range r.header {
		if i < len(fields) {
			rec[name] = fields[i]
		}
	}
	for _, col := range types.RequiredColumns {
		if _, ok := rec[col]; !ok {
			return nil, r.row, &RecordError{
				Kind:  ErrMalformedRecord,
				Row:   r.row,
				Title: rec[types.ColumnTitle],
				Err:   fmt.Errorf("missing column %q", col),
			}
		}
	}
	return rec, r.row, nil
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// DeriveBook computes the document fields for rec.
func DeriveBook(rec types.Record, row int) (types.Book, error) {
	title := rec[types.ColumnTitle]
	dateAdded := rec[types.ColumnDateAdded]

	year, _, ok := strings.Cut(dateAdded, "/")
	if !ok || year == "" {
		return types.Book{}, &RecordError{
			Kind:  ErrMalformedRecord,
			Row:   row,
			Title: title,
			Err:   fmt.Errorf("date added %q has no year/ prefix", dateAdded),
		}
	}

	return types.Book{
		Title:           title,
		AuthorFirstName: firstSegment(rec[types.ColumnAuthor]),
		AuthorLastName:  firstSegment(rec[types.ColumnAuthorLF]),
		Year:            year,
		Row:             row,
	}, nil
}

// firstSegment returns s up to its first comma, or all of s.
func firstSegment(s string) string {
	before, _, _ := strings.Cut(s, ",")
	return before
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range types.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// readError classifies an error from the CSV reader. Syntax errors are
// malformed records; anything else means the input could not be read.
func readError(err error, row int) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &RecordError{Kind: ErrMalformedRecord, Row: row, Err: err}
	}
	return fmt.Errorf("%w: %v", ErrInputUnreadable, err)
}
