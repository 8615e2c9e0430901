// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"athan/internal/domain/entity"
	"athan/internal/errors"
	"athan/internal/schedule"
)

// ErrPrayerTimesNotFound is returned when no prayer times are published for a date.
var ErrPrayerTimesNotFound = errors.New("prayer times not found")

// PrayerTimeRepository reads the administratively maintained prayer timetable.
type PrayerTimeRepository interface {
	// FindByDate returns the prayer times of one civil date.
	FindByDate(ctx context.Context, date schedule.CivilDate) (*entity.DailyPrayerTimes, error)
}
