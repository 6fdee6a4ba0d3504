package models

import (
	"errors"
	"time"
)

// ISOLayout renders UTC timestamps with millisecond precision, e.g.
// 2023-01-12T08:12:39.261Z.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var isoInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

var errNotISO = errors.New("not an ISO-8601 timestamp")

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO accepts the common ISO-8601 date and date-time forms, including
// the reduced precision year-month and year forms. Values without a zone
// are read as UTC.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNotISO
}

// NormalizeISO parses s and renders it back with FormatISO.
func NormalizeISO(s string) (string, error) {
	t, err := ParseISO(s)
	if err != nil {
		return "", err
	}
	return FormatISO(t), nil
}
