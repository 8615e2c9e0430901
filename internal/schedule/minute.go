// Package schedule resolves wall-clock time in the congregation's zone and
// computes when each reminder type fires relative to a prayer time.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"athan/internal/errors"
)

// MinutesPerDay is the size of the minute-of-day space.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned for stored time strings that cannot be normalized.
var ErrInvalidTime = errors.New("invalid time of day")

// timePattern accepts "H:MM", "HH:MM", an optional ":SS" and an optional AM/PM suffix.
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AP]M)?$`)

// MinuteOfDay is a time of day in the range [0, 1440).
type MinuteOfDay int

// NewMinuteOfDay builds a MinuteOfDay from a 24-hour clock reading.
func NewMinuteOfDay(hour, minute int) (MinuteOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.Wrapf(ErrInvalidTime, "%02d:%02d out of range", hour, minute)
	}

	return MinuteOfDay(hour*60 + minute), nil
}

// Hour returns the hour component.
func (m MinuteOfDay) Hour() int {
	return int(m) / 60
}

// Minute returns the minute component.
func (m MinuteOfDay) Minute() int {
	return int(m) % 60
}

// Add shifts m by delta minutes, wrapping around midnight.
func (m MinuteOfDay) Add(delta int) MinuteOfDay {
	return MinuteOfDay(((int(m)+delta)%MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

// String renders m as zero-padded HH:MM.
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// Normalize converts a stored time string into a MinuteOfDay.
//
// Both 24-hour ("5:10", "17:45", "05:10:00") and 12-hour ("5:10 AM",
// "05:45pm") forms are accepted, case-insensitively and with surrounding
// whitespace. Anything else yields ErrInvalidTime.
func Normalize(raw string) (MinuteOfDay, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, errors.Wrap(ErrInvalidTime, "empty value")
	}

	match := timePattern.FindStringSubmatch(cleaned)
	if match == nil {
		return 0, errors.Wrapf(ErrInvalidTime, "unrecognized format %q", raw)
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if match[3] != "" {
		if seconds, _ := strconv.Atoi(match[3]); seconds > 59 {
			return 0, errors.Wrapf(ErrInvalidTime, "seconds out of range in %q", raw)
		}
	}

	switch match[4] {
	case "AM", "PM":
		if hour < 1 || hour > 12 {
			return 0, errors.Wrapf(ErrInvalidTime, "12-hour value out of range in %q", raw)
		}
		hour %= 12
		if match[4] == "PM" {
			hour += 12
		}
	}

	return NewMinuteOfDay(hour, minute)
}
