// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
)

// Error kinds raised while reading a catalog. Callers match them with errors.Is.
var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInputUnreadable = errors.New("input unreadable")
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError ties a failure to the catalog row that caused it. Kind is one
// of the package or caller error kinds; Err is the underlying cause, if any.
type RecordError struct {
	Kind  error
	Row   int
	Title string
	Err   error
}

func (e *RecordError) Error() string {
	msg := e.Kind.Error()
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Title != "" {
		msg += fmt.Sprintf(" (%q)", e.Title)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RecordError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
