// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"athan/internal/domain/entity"
	"athan/internal/domain/repository"
	"athan/internal/infra/persistence/model"
	"athan/internal/schedule"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prayerTimeRepository implements the repository.PrayerTimeRepository interface.
type prayerTimeRepository struct {
	db *gorm.DB
}

// NewPrayerTimeRepository is the constructor for prayerTimeRepository.
func NewPrayerTimeRepository(db *gorm.DB) repository.PrayerTimeRepository {
	return &prayerTimeRepository{
		db: db,
	}
}

// FindByDate retrieves the prayer times published for one civil date.
func (repo *prayerTimeRepository) FindByDate(ctx context.Context, date schedule.CivilDate) (*entity.DailyPrayerTimes, error) {
	var timesM model.DailyPrayerTimesModel

	if err := repo.db.WithContext(ctx).
		Where("date = ?", date.String()).
		First(&timesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrayerTimesNotFound
		}

		return nil, errors.Wrap(err, "failed to find prayer times by date")
	}

	return toPrayerTimesDomain(&timesM), nil
}

// --- Mapper Functions ---

func toPrayerTimesDomain(data *model.DailyPrayerTimesModel) *entity.DailyPrayerTimes {
	if data == nil {
		return nil
	}

	return &entity.DailyPrayerTimes{
		ID:        data.ID,
		Date:      schedule.DateOf(data.Date),
		Fajr:      data.Fajr,
		Dhuhr:     data.Dhuhr,
		Asr:       data.Asr,
		Maghrib:   data.Maghrib,
		Isha:      data.Isha,
		UpdatedAt: data.UpdatedAt,
	}
}
