// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"athan/internal/domain/entity"
	domainerrors "athan/internal/domain/errors"
	"athan/internal/domain/repository"
	"athan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindEnabled retrieves every push registration that still wants reminders.
func (repo *subscriptionRepository) FindEnabled(ctx context.Context) ([]*entity.PushSubscription, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("notifications_enabled = ?", true).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled subscriptions")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(tokenM))
	}

	return subscriptions, nil
}

// DeleteByIDs removes the given registrations in one statement.
func (repo *subscriptionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.PushTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscriptions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(data *model.PushTokenModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:           data.ID,
		Token:        data.Token,
		DeviceID:     data.DeviceID,
		ReminderType: data.ReminderType,
		Enabled:      data.NotificationsEnabled,
		Platform:     data.Platform,
		Location:     data.Location,
		CreatedAt:    data.CreatedAt,
	}
}
