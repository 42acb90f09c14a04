package storage

import (
	"strings"
	"time"
)

// Display formats used throughout the app. New entries are written in ISO
// form and converted to these on the next load.
const (
	dateDisplayFormat      = "02-01-2006"
	timestampDisplayFormat = "02-01-2006 15:04"
)

// Accepted input layouts, day-first forms before ISO forms to match how the
// original data was keyed in.
var dateLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04",
}

var timestampLayouts = []string{
	"02-01-2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"02-01-2006",
	"2006-01-02",
}

func parseAny(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeDate converts a payment date in any tolerated format to
// DD-MM-YYYY. Unparseable values come back empty rather than failing the
// whole load.
func normalizeDate(value string) string {
	t, ok := parseAny(value, dateLayouts)
	if !ok {
		return ""
	}
	return t.Format(dateDisplayFormat)
}

// normalizeTimestamp converts an entry timestamp in any tolerated format to
// DD-MM-YYYY HH:MM, empty if unparseable.
func normalizeTimestamp(value string) string {
	t, ok := parseAny(value, timestampLayouts)
	if !ok {
		return ""
	}
	return t.Format(timestampDisplayFormat)
}
