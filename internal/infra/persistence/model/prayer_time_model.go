package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyPrayerTimesModel is the GORM-specific struct for the 'daily_prayer_times' table.
// Prayer columns hold the raw strings entered by administrators, e.g. "5:10 AM".
type DailyPrayerTimesModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex"`
	Fajr      *string   `gorm:"type:text"`
	Dhuhr     *string   `gorm:"type:text"`
	Asr       *string   `gorm:"type:text"`
	Maghrib   *string   `gorm:"type:text"`
	Isha      *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyPrayerTimesModel) TableName() string {
	return "daily_prayer_times"
}
