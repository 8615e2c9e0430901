// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"athan/internal/domain/entity"
	domainerrors "athan/internal/domain/errors"
	"athan/internal/domain/repository"
	"athan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const deliveryLogBatchSize = 200

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// FindLoggedKeys returns which of keys already have a sent-log row.
func (repo *deliveryLogRepository) FindLoggedKeys(ctx context.Context, keys []string) (map[string]struct{}, error) {
	logged := make(map[string]struct{})
	if len(keys) == 0 {
		return logged, nil
	}

	var found []string
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationSentLogModel{}).
		Where("dedupe_key IN ?", keys).
		Pluck("dedupe_key", &found).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find logged dedupe keys")
	}

	for _, key := range found {
		logged[key] = struct{}{}
	}

	return logged, nil
}

// AppendEntries inserts the entries, ignoring keys that are already logged.
func (repo *deliveryLogRepository) AppendEntries(ctx context.Context, entries []*entity.DeliveryLogEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	logModels := make([]*model.NotificationSentLogModel, 0, len(entries))
	for _, entry := range entries {
		logModels = append(logModels, fromDeliveryLogDomain(entry))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dedupe_key"}},
			DoNothing: true,
		}).
		CreateInBatches(logModels, deliveryLogBatchSize)
	if result.Error != nil {
		// Another writer committed the same key first.
		if isUniqueConstraintViolation(result.Error) {
			return result.RowsAffected, nil
		}
		if isNotNullConstraintViolation(result.Error) {
			return 0, domainerrors.NewDatabaseExecuteError(result.Error, "missing required delivery log information")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to append delivery log entries")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func fromDeliveryLogDomain(data *entity.DeliveryLogEntry) *model.NotificationSentLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationSentLogModel{
		ID:             data.ID,
		DedupeKey:      data.DedupeKey,
		SubscriptionID: data.SubscriptionID,
		Token:          data.Token,
		PrayerName:     string(data.PrayerName),
		ReminderType:   string(data.ReminderType),
		PrayerDate:     data.PrayerDate.Midnight(time.UTC),
		FCMMessageID:   data.MessageID,
		SentAt:         data.SentAt,
	}
}
