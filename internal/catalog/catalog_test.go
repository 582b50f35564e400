// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookshelf/pkg/types"
)

const header = "Title,Author,Author l-f,Date Added\n"

func readAll(t *testing.T, r *Reader) []types.Record {
	t.Helper()
	var out []types.Record
	for {
		rec, _, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestNewReader(t *testing.T) {
	input := header +
		"Dune,\"Herbert, Frank\",\"Herbert, Frank\",2023/05/01\n" +
		"\"Quoted \"\"Title\"\"\",A,B,2022/01/01\n"

	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Author", "Author l-f", "Date Added"}, r.Header())

	recs := readAll(t, r)
	require.Len(t, recs, 2)
	assert.Equal(t, "Dune", recs[0][types.ColumnTitle])
	assert.Equal(t, "Herbert, Frank", recs[0][types.ColumnAuthor])
	assert.Equal(t, `Quoted "Title"`, recs[1][types.ColumnTitle])
}

func TestNewReader_RowNumbers(t *testing.T) {
	input := header + "A,x,x,2023/1/1\nB,y,y,2023/1/2\n"
	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)

	_, row, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	_, row, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, row)
	_, _, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewReader_StripsBOM(t *testing.T) {
	input := "\ufeff" + header + "Dune,H,H,2023/05/01\n"
	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)
	recs := readAll(t, r)
	require.Len(t, recs, 1)
	assert.Equal(t, "Dune", recs[0][types.ColumnTitle])
}

func TestNewReader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "empty input",
			input:   "",
			wantMsg: "missing header row",
		},
		{
			name:    "header missing columns",
			input:   "Title,Author\nDune,Herbert\n",
			wantMsg: "Date Added, Author l-f",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNext_ShortRow(t *testing.T) {
	r, err := NewReader(strings.NewReader(header + "Dune,Herbert\n"))
	require.NoError(t, err)

	_, row, err := r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, 2, row)

	var rerr *RecordError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 2, rerr.Row)
	assert.Equal(t, "Dune", rerr.Title)
}

func TestNext_UnterminatedQuote(t *testing.T) {
	r, err := NewReader(strings.NewReader(header + "\"unterminated,x,x,2023/1/1\n"))
	require.NoError(t, err)

	_, _, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestNext_BareQuoteIsLiteral(t *testing.T) {
	r, err := NewReader(strings.NewReader(header + `The "Real" Story,A,B,2023/1/1` + "\n"))
	require.NoError(t, err)

	rec, _, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, `The "Real" Story`, rec[types.ColumnTitle])
	assert.Equal(t, "2023/1/1", rec[types.ColumnDateAdded])
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"Dune,H,H,2023/05/01\n"), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Len(t, readAll(t, r), 1)
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnreadable)
}

func TestDeriveBook(t *testing.T) {
	tests := []struct {
		name string
		rec  types.Record
		want types.Book
	}{
		{
			name: "comma separated authors",
			rec: types.Record{
				types.ColumnTitle:     "Dune",
				types.ColumnAuthor:    "Herbert, Frank",
				types.ColumnAuthorLF:  "Herbert, Frank",
				types.ColumnDateAdded: "2023/05/01",
			},
			want: types.Book{Title: "Dune", AuthorFirstName: "Herbert", AuthorLastName: "Herbert", Year: "2023", Row: 7},
		},
		{
			name: "no comma keeps whole value",
			rec: types.Record{
				types.ColumnTitle:     "Emma",
				types.ColumnAuthor:    "Jane Austen",
				types.ColumnAuthorLF:  "Austen",
				types.ColumnDateAdded: "2023/1/9",
			},
			want: types.Book{Title: "Emma", AuthorFirstName: "Jane Austen", AuthorLastName: "Austen", Year: "2023", Row: 7},
		},
		{
			name: "empty authors",
			rec: types.Record{
				types.ColumnTitle:     "Anonymous",
				types.ColumnAuthor:    "",
				types.ColumnAuthorLF:  "",
				types.ColumnDateAdded: "2023/02/02",
			},
			want: types.Book{Title: "Anonymous", Year: "2023", Row: 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveBook(tt.rec, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveBook_MalformedDate(t *testing.T) {
	for _, date := range []string{"2023-05-01", "", "/05/01"} {
		t.Run(date, func(t *testing.T) {
			rec := types.Record{
				types.ColumnTitle:     "Dune",
				types.ColumnAuthor:    "Herbert",
				types.ColumnAuthorLF:  "Herbert",
				types.ColumnDateAdded: date,
			}
			_, err := DeriveBook(rec, 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), "row 3")
			assert.Contains(t, err.Error(), `"Dune"`)
		})
	}
}

func TestRecordError(t *testing.T) {
	cause := errors.New("disk full")
	err := &RecordError{Kind: ErrInputUnreadable, Row: 4, Title: "Dune", Err: cause}

	assert.Equal(t, `input unreadable at row 4 ("Dune"): disk full`, err.Error())
	assert.ErrorIs(t, err, ErrInputUnreadable)
	assert.ErrorIs(t, err, cause)
}
