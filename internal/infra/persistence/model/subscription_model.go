package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'users_push_tokens' table.
// A device has one row per reminder type it asked for.
type PushTokenModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token                string    `gorm:"type:text;not null;index"`
	DeviceID             string    `gorm:"type:text;index"`
	ReminderType         string    `gorm:"type:text;not null"`
	NotificationsEnabled bool      `gorm:"not null;default:true;index"`
	Platform             string    `gorm:"type:text"`
	Location             string    `gorm:"type:text"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "users_push_tokens"
}
