// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a CSV book catalog into one static-site document per
// selected record.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/pdiddy/bookshelf/internal/catalog"
	"github.com/pdiddy/bookshelf/internal/render"
	"github.com/pdiddy/bookshelf/pkg/types"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Error kinds. Read-side kinds come from the catalog package.
var (
	ErrInputNotFound     = catalog.ErrInputNotFound
	ErrInputUnreadable   = catalog.ErrInputUnreadable
	ErrMalformedRecord   = catalog.ErrMalformedRecord
	ErrOutputUnavailable = errors.New("output directory unavailable")
	ErrWriteFailed       = errors.New("write failed")
	ErrFilenameCollision = errors.New("filename collision")
)

// RecordError is returned for failures tied to a single catalog row.
type RecordError = catalog.RecordError

// Convert reads cfg.InputPath and writes one document into cfg.OutputDir for
// every record whose Date Added starts with cfg.YearPrefix. Progress lines go
// to w. The first error aborts the run; documents already written stay.
func Convert(ctx context.Context, cfg types.ConvertConfig, w io.Writer) (types.RunSummary, error) {
	cfg = withDefaults(cfg)
	summary := types.RunSummary{Input: cfg.InputPath, OutputDir: cfg.OutputDir}

	policy, err := types.ParseCollisionPolicy(string(cfg.OnCollision))
	if err != nil {
		return summary, err
	}

	if err := os.MkdirAll(cfg.OutputDir, dirPerm); err != nil {
		return summary, fmt.Errorf("%w: creating %s: %v", ErrOutputUnavailable, cfg.OutputDir, err)
	}

	r, err := catalog.Open(cfg.InputPath)
	if err != nil {
		return summary, err
	}
	defer r.Close()

	names := newNameSet(policy)
	written := make(map[string]bool)
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rec, row, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, err
		}

		if !Selected(rec, cfg.YearPrefix) {
			summary.Filtered++
			continue
		}

		book, err := catalog.DeriveBook(rec, row)
		if err != nil {
			return summary, err
		}

		name, err := names.claim(render.Filename(book.Title))
		if err != nil {
			return summary, &RecordError{Kind: ErrFilenameCollision, Row: row, Title: book.Title, Err: err}
		}

		if hasPathSeparator(name) {
			return summary, &RecordError{Kind: ErrWriteFailed, Row: row, Title: book.Title, Err: fmt.Errorf("filename %s contains a path separator", name)}
		}
		if err := writeDocument(filepath.Join(cfg.OutputDir, name), render.Document(book)); err != nil {
			return summary, &RecordError{Kind: ErrWriteFailed, Row: row, Title: book.Title, Err: err}
		}

		if written[name] {
			summary.Overwritten++
			fmt.Fprintf(w, "overwrote: %s\n", name)
			continue
		}
		written[name] = true
		summary.Written++
		summary.Files = append(summary.Files, name)
		fmt.Fprintf(w, "converted: %s\n", name)
	}

	fmt.Fprintf(w, "\nConvert summary: %d written, %d overwritten, %d filtered (total: %d)\n",
		summary.Written, summary.Overwritten, summary.Filtered, summary.Total())
	return summary, nil
}

// Selected reports whether rec passes the Date Added prefix filter.
func Selected(rec types.Record, yearPrefix string) bool {
	return strings.HasPrefix(rec[types.ColumnDateAdded], yearPrefix)
}

func withDefaults(cfg types.ConvertConfig) types.ConvertConfig {
	if cfg.InputPath == "" {
		cfg.InputPath = types.DefaultInputPath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = types.DefaultOutputDir
	}
	if cfg.YearPrefix == "" {
		cfg.YearPrefix = types.DefaultYearPrefix
	}
	return cfg
}

// hasPathSeparator reports whether name would resolve outside the output
// directory's top level on this OS.
func hasPathSeparator(name string) bool {
	return strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator)
}

// writeDocument replaces path with content in one rename so a reader never
// sees a half-written document.
func writeDocument(path, content string) error {
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(content))); err != nil {
		return err
	}
	return os.Chmod(path, filePerm)
}
