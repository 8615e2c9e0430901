package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSentLogModel is the GORM-specific struct for the 'notification_sent_log' table.
// The unique index on DedupeKey is what makes concurrent ticks log each event once.
type NotificationSentLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DedupeKey      string    `gorm:"type:text;not null;uniqueIndex"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;index"`
	Token          string    `gorm:"type:text;not null"`
	PrayerName     string    `gorm:"type:text;not null"`
	ReminderType   string    `gorm:"type:text;not null"`
	PrayerDate     time.Time `gorm:"type:date;not null;index"`
	FCMMessageID   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationSentLogModel) TableName() string {
	return "notification_sent_log"
}
