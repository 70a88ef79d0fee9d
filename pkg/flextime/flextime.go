// Package flextime parses the timestamp shapes found in legacy
// work-order records. Depending on which surface wrote them, stored
// dates may be RFC3339, zone-less ISO strings, or the old
// "dd.MM.yyyy[ HH:mm]" display format.
package flextime

import (
	"strings"
	"time"
)

var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
}

// Parse parses a timestamp in any accepted shape. Layouts without zone
// information are interpreted in loc. Unparsable input returns
// ok=false, never an error: callers drop the record from time-gated
// predicates only, not from the whole pass.
func Parse(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// DayStart returns midnight of now's calendar day in loc.
func DayStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
