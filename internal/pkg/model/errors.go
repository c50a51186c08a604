package model

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// ErrNoData reports a payload that produced no curve rows at all.
var ErrNoData = errors.New("no curve data")

// MissingLabelError reports a maturity label that is not part of the supported
// curve, either in a CSV header or in a caller's lookup.
type MissingLabelError struct {
	Label string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("maturity label not recognized: %q", e.Label)
}

// InvalidYearError reports a requested year outside the published range. The
// check happens before any fetch is attempted.
type InvalidYearError struct {
	Year int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("no data published before 1990 or after the current year, requested %d", e.Year)
}

// OutsideDateRangeError reports a requested date that no curve in the year's
// history can cover, even allowing the forward grace window.
type OutsideDateRangeError struct {
	Date civil.Date
}

func (e *OutsideDateRangeError) Error() string {
	return fmt.Sprintf("no curve covers %s, even allowing %d days past the last publication", e.Date, MaxForwardDays)
}

// DecodeError reports a malformed field in a CSV payload. It aborts the whole
// build; no partial history is ever returned.
type DecodeError struct {
	Line  int    // 1-based line number within the payload
	Field string // offending field text
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: cannot decode %q: %v", e.Line, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FetchError reports a transport or text-decoding failure from the upstream
// source. It is propagated verbatim; retrying is the caller's decision.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DuplicateDateError reports two rows sharing one trading date. Which row
// should win is undefined upstream, so the build refuses the payload.
type DuplicateDateError struct {
	Date civil.Date
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("duplicate curve date %s", e.Date)
}
