// Package entity contains the core business objects of the project.
package entity

import "time"

// TickReport summarizes one dispatch tick.
type TickReport struct {
	TickID               string            `json:"tick_id"`
	Date                 string            `json:"date"`
	Minute               string            `json:"minute"`
	Subscriptions        int               `json:"subscriptions"`
	Candidates           int               `json:"candidates"`
	AlreadyDelivered     int               `json:"already_delivered"`
	Delivered            int               `json:"delivered"`
	TokenInvalid         int               `json:"token_invalid"`
	TransientFailures    int               `json:"transient_failures"`
	LogsWritten          int64             `json:"logs_written"`
	SubscriptionsDeleted int64             `json:"subscriptions_deleted"`
	SkippedFields        []string          `json:"skipped_fields,omitempty"`
	LedgerErrors         map[string]string `json:"ledger_errors,omitempty"`
	Skipped              string            `json:"skipped,omitempty"`
	StartedAt            time.Time         `json:"started_at"`
	Duration             time.Duration     `json:"duration"`
}

// Ledger operations named in TickReport.LedgerErrors.
const (
	LedgerOpAppendLog           = "append_log"
	LedgerOpDeleteSubscriptions = "delete_subscriptions"
)

// Reasons a tick ends without dispatching.
const (
	TickSkippedLocked          = "tick in progress"
	TickSkippedNoPrayerTimes   = "no prayer times for date"
	TickSkippedNoSubscriptions = "no enabled subscriptions"
)
