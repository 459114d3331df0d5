package kenpom

import (
	"errors"
	"fmt"
)

// ErrLayoutChanged reports that the ratings table produced fewer teams than
// the configured minimum, which usually means kenpom.com changed its table
// structure and every data row was silently filtered out.
var ErrLayoutChanged = errors.New("ratings table layout may have changed")

// errWinLossShape rejects win-loss tokens that do not split into exactly two
// parts on a hyphen.
var errWinLossShape = errors.New("want exactly one hyphen separating wins and losses")

// FetchError reports a failure to retrieve the ratings page. StatusCode is
// zero when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a field that failed type coercion in a row that had the
// expected column count. Row is the zero-based index among candidate data
// rows; Team is empty when the failure happened before the name was read.
type ParseError struct {
	Row   int
	Team  string
	Field string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Team != "" {
		return fmt.Sprintf("row %d (%s): parsing %s %q: %v", e.Row, e.Team, e.Field, e.Token, e.Err)
	}
	return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
