// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"athan/internal/schedule"

	"github.com/google/uuid"
)

// PrayerName identifies one of the five daily prayers.
type PrayerName string

const (
	Fajr    PrayerName = "fajr"
	Dhuhr   PrayerName = "dhuhr"
	Asr     PrayerName = "asr"
	Maghrib PrayerName = "maghrib"
	Isha    PrayerName = "isha"
)

// Prayers lists the five prayers in the order they occur during the day.
func Prayers() []PrayerName {
	return []PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}
}

// DailyPrayerTimes holds the published adhan times for one civil date.
// A nil time means the prayer has no published time for that date.
type DailyPrayerTimes struct {
	ID        uuid.UUID          `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	Date      schedule.CivilDate `json:"date"`       // The civil date these times apply to.
	Fajr      *string            `json:"fajr"`       // Raw stored Fajr time, e.g. "5:10 AM".
	Dhuhr     *string            `json:"dhuhr"`      // Raw stored Dhuhr time.
	Asr       *string            `json:"asr"`        // Raw stored Asr time.
	Maghrib   *string            `json:"maghrib"`    // Raw stored Maghrib time.
	Isha      *string            `json:"isha"`       // Raw stored Isha time.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last administrative change.
}

// TimeOf returns the raw stored time for prayer, or nil when absent.
func (d *DailyPrayerTimes) TimeOf(prayer PrayerName) *string {
	if d == nil {
		return nil
	}

	switch prayer {
	case Fajr:
		return d.Fajr
	case Dhuhr:
		return d.Dhuhr
	case Asr:
		return d.Asr
	case Maghrib:
		return d.Maghrib
	case Isha:
		return d.Isha
	default:
		return nil
	}
}
