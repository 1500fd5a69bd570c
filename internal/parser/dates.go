package parser

import (
	"time"

	"github.com/mmynk/pairtime/internal/models"
)

// dateFormat pairs a human-readable pattern with its Go layout.
type dateFormat struct {
	pattern string
	layout  string
}

// dateFormats is tried in order; the first layout that parses wins.
// This makes "01-02-2020" mean 1 February, never 2 January.
// Read-only after init.
var dateFormats = [...]dateFormat{
	{pattern: "dd-MM-yyyy", layout: "02-01-2006"},
	{pattern: "MM/dd/yyyy", layout: "01/02/2006"},
	{pattern: "yyyy-MM-dd", layout: "2006-01-02"},
}

// AcceptedDateFormats returns the accepted date patterns in resolution order.
func AcceptedDateFormats() []string {
	patterns := make([]string, len(dateFormats))
	for i, f := range dateFormats {
		patterns[i] = f.pattern
	}
	return patterns
}

// tryParseDate attempts a single layout.
func tryParseDate(value string, f dateFormat) (time.Time, error) {
	t, err := time.Parse(f.layout, value)
	if err != nil {
		return time.Time{}, err
	}
	return models.Date(t), nil
}

// resolveDate tries every format in order and returns the last format's
// parse error when none matches.
func resolveDate(value string) (time.Time, error) {
	var lastErr error
	for _, f := range dateFormats {
		t, err := tryParseDate(value, f)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ResolveDate parses value with the first accepted format that matches.
// The returned date is at UTC midnight. ok is false when no format matches.
func ResolveDate(value string) (date time.Time, ok bool) {
	date, err := resolveDate(value)
	return date, err == nil
}
