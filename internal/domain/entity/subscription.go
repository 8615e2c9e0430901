// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one (device, reminder type) registration for prayer reminders.
type PushSubscription struct {
	ID           uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the subscription row.
	Token        string    `json:"token"`                 // Opaque FCM registration token of the device.
	DeviceID     string    `json:"device_id"`             // Client-generated device identifier.
	ReminderType string    `json:"reminder_type"`         // Stored reminder tag, canonicalized by schedule.ParseReminderType.
	Enabled      bool      `json:"notifications_enabled"` // Whether the device currently wants reminders.
	Platform     string    `json:"platform"`              // Client platform (web, ios).
	Location     string    `json:"location"`              // Location label chosen on the device.
	CreatedAt    time.Time `json:"created_at"`            // Timestamp of when this row was registered.
}
