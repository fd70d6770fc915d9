// Package errs is a thin seam over cockroachdb/errors so the rest of the
// codebase never imports it directly.
package errs

import cr "github.com/cockroachdb/errors"

// New returns an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. Returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an errors.Is target of err without changing
// the message. When err is nil the mark itself is returned.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
