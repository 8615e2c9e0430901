// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"athan/internal/schedule"

	"github.com/google/uuid"
)

// ReminderCandidate is a reminder due in the current tick. It lives only for
// the duration of one tick.
type ReminderCandidate struct {
	Key            string
	SubscriptionID uuid.UUID
	Token          string
	Prayer         PrayerName
	ReminderType   schedule.ReminderType
	Date           schedule.CivilDate
	PrayerMinute   schedule.MinuteOfDay
	FireMinute     schedule.MinuteOfDay
}

// LogEntry converts a delivered candidate into its ledger row.
func (c ReminderCandidate) LogEntry(messageID string, sentAt time.Time) *DeliveryLogEntry {
	return &DeliveryLogEntry{
		ID:             uuid.New(),
		DedupeKey:      c.Key,
		SubscriptionID: c.SubscriptionID,
		Token:          c.Token,
		PrayerName:     c.Prayer,
		ReminderType:   c.ReminderType,
		PrayerDate:     c.Date,
		MessageID:      messageID,
		SentAt:         sentAt,
	}
}
