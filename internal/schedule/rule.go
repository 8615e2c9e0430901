package schedule

import "strings"

// ReminderType selects a fixed offset relative to a prayer's clock time.
type ReminderType string

const (
	TenMinutesBefore  ReminderType = "10-min-before"
	FiveMinutesBefore ReminderType = "5-min-before"
	AtAdhan           ReminderType = "at-adhan"
	AtIqamah          ReminderType = "at-iqamah"
)

var reminderOffsets = map[ReminderType]int{
	TenMinutesBefore:  -10,
	FiveMinutesBefore: -5,
	AtAdhan:           0,
	AtIqamah:          15,
}

// Tags written by older web clients.
var legacyReminderTypes = map[string]ReminderType{
	"10min":  TenMinutesBefore,
	"5min":   FiveMinutesBefore,
	"adhan":  AtAdhan,
	"iqamah": AtIqamah,
}

// ReminderTypes lists every supported type in offset order.
func ReminderTypes() []ReminderType {
	return []ReminderType{TenMinutesBefore, FiveMinutesBefore, AtAdhan, AtIqamah}
}

// ParseReminderType canonicalizes a stored tag. Unknown tags report false.
func ParseReminderType(raw string) (ReminderType, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := reminderOffsets[ReminderType(tag)]; ok {
		return ReminderType(tag), true
	}

	t, ok := legacyReminderTypes[tag]

	return t, ok
}

// Offset returns the minutes between prayer time and reminder.
func (t ReminderType) Offset() (int, bool) {
	offset, ok := reminderOffsets[t]

	return offset, ok
}

// FireMinute returns the minute-of-day a reminder of type t fires for a
// prayer at prayerMinute. The result wraps within the day; it never moves
// the reminder to another civil date.
func FireMinute(prayerMinute MinuteOfDay, t ReminderType) (MinuteOfDay, bool) {
	offset, ok := t.Offset()
	if !ok {
		return 0, false
	}

	return prayerMinute.Add(offset), true
}
