// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"athan/internal/schedule"

	"github.com/google/uuid"
)

// DeliveryLogEntry records one confirmed reminder delivery. Entries are append-only
// and unique per DedupeKey.
type DeliveryLogEntry struct {
	ID             uuid.UUID             `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	DedupeKey      string                `json:"dedupe_key"`      // Idempotency key of the delivered event.
	SubscriptionID uuid.UUID             `json:"subscription_id"` // The subscription that was notified.
	Token          string                `json:"token"`           // Token the message was delivered to.
	PrayerName     PrayerName            `json:"prayer_name"`     // The prayer the reminder was about.
	ReminderType   schedule.ReminderType `json:"reminder_type"`   // The canonical reminder type.
	PrayerDate     schedule.CivilDate    `json:"prayer_date"`     // The prayer's civil date.
	MessageID      string                `json:"message_id"`      // FCM message ID returned on success.
	SentAt         time.Time             `json:"sent_at"`         // Timestamp of the successful send.
}

// NewIdempotencyKey serializes the identity of one reminder event as
// "{date}:{subscriptionId}:{prayer}:{reminderType}".
func NewIdempotencyKey(date schedule.CivilDate, subscriptionID uuid.UUID, prayer PrayerName, reminderType schedule.ReminderType) string {
	return fmt.Sprintf("%s:%s:%s:%s", date, subscriptionID, prayer, reminderType)
}
