package model

import "strings"

// Weekdays lists the valid BusinessHour day names in display order. Stored
// documents use the lowercase form.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// BusinessHour is the opening schedule for a single day. Day is a natural key:
// the store itself does not enforce uniqueness, so every write must go through
// the repository's upsert, which keeps at most one record per day.
type BusinessHour struct {
	Base

	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	Order     int    `json:"order"`
}

// NormalizeDay folds a day name to the stored lowercase form, trimming
// surrounding whitespace. Callers taking day names from request payloads
// normalize before validating, so "Monday" and "monday" address the same
// record.
func NormalizeDay(day string) string {
	return strings.ToLower(strings.TrimSpace(day))
}

// ValidDay reports whether day is one of the seven weekday names.
func ValidDay(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DayOrder returns the 1-based display rank of a weekday name, so a zero rank
// always means "not set". Unknown days rank 0.
func DayOrder(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i + 1
		}
	}
	return 0
}
