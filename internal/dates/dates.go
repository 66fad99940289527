// Package dates normalizes the heterogeneous date inputs the presentation
// layer produces into the single canonical YYYY-MM-DD form used for storage
// and ordering. Lexicographic order on the canonical form matches
// chronological order, which is what the due-date sort relies on.
package dates

import (
	"errors"
	"strings"
	"time"
)

// Layout is the canonical calendar-date form.
const Layout = time.DateOnly

// ErrUnparseable marks input that could not be interpreted as a date.
// Canonicalize still returns today's date alongside it so lenient callers
// keep the historical fall-back behaviour, while strict callers can reject.
var ErrUnparseable = errors.New("unparseable date input")

// now is swapped in tests.
var now = time.Now

// Canonicalize normalizes v into canonical form. Accepted inputs are
// canonical strings (returned unchanged), strings with a time component
// (truncated at the delimiter), any other parseable date string, time.Time
// and *time.Time (formatted in UTC). Anything else yields today's UTC date
// and ErrUnparseable.
func Canonicalize(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return canonicalizeString(val)
	case time.Time:
		return val.UTC().Format(Layout), nil
	case *time.Time:
		if val == nil {
			return today(), ErrUnparseable
		}
		return val.UTC().Format(Layout), nil
	default:
		return today(), ErrUnparseable
	}
}

func canonicalizeString(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if _, err := time.Parse(Layout, trimmed); err == nil {
		return trimmed, nil
	}
	// Date with a time component: keep the date-only prefix when it is valid.
	if prefix, _, found := strings.Cut(trimmed, "T"); found {
		if _, err := time.Parse(Layout, prefix); err == nil {
			return prefix, nil
		}
	}
	// Other layouts the form layer has been seen to produce.
	for _, layout := range []string{time.RFC3339, time.RFC1123, "2006/01/02", "01/02/2006"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(Layout), nil
		}
	}
	return today(), ErrUnparseable
}

// IsCanonical reports whether s is already in canonical form.
func IsCanonical(s string) bool {
	_, err := time.Parse(Layout, s)
	return err == nil
}

func today() string {
	return now().UTC().Format(Layout)
}
