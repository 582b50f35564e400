// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the text of a book document. It does no I/O.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// CoverPlaceholder is the cover image every document points at.
const CoverPlaceholder = "/assets/images/book-cover-placeholder.jpg"

// Layout is the static-site layout name for book documents.
const Layout = "book"

// Extension is appended to every document filename.
const Extension = ".md"

// Document renders b as a frontmatter-only document. Values are inserted
// literally; embedded double quotes are not escaped. There is no trailing
// newline after the closing delimiter.
func Document(b types.Book) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "layout: %s\n", Layout)
	fmt.Fprintf(&sb, "title: \"%s\"\n", b.Title)
	fmt.Fprintf(&sb, "author_first_name: \"%s\"\n", b.AuthorFirstName)
	fmt.Fprintf(&sb, "author_last_name: \"%s\"\n", b.AuthorLastName)
	fmt.Fprintf(&sb, "cover_url: \"%s\"\n", CoverPlaceholder)
	fmt.Fprintf(&sb, "year: %s\n", b.Year)
	sb.WriteString("---")
	return sb.String()
}

// Filename maps a title to its document filename: spaces become
// underscores and the .md extension is appended.
func Filename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + Extension
}
