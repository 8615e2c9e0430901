package postgres

import (
	"testing"
	"time"

	"athan/internal/domain/entity"
	"athan/internal/infra/persistence/model"
	"athan/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPrayerTimesDomain(t *testing.T) {
	fajr := "5:10 AM"
	timesM := &model.DailyPrayerTimesModel{
		ID:   uuid.New(),
		Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Fajr: &fajr,
	}

	times := toPrayerTimesDomain(timesM)

	require.NotNil(t, times)
	assert.Equal(t, "2026-03-01", times.Date.String())
	assert.Equal(t, &fajr, times.TimeOf(entity.Fajr))
	assert.Nil(t, times.TimeOf(entity.Isha))
	assert.Nil(t, toPrayerTimesDomain(nil))
}

func TestToSubscriptionDomain(t *testing.T) {
	tokenM := &model.PushTokenModel{
		ID:                   uuid.New(),
		Token:                "fcm-token",
		DeviceID:             "device-1",
		ReminderType:         "5min",
		NotificationsEnabled: true,
		Platform:             "ios",
	}

	sub := toSubscriptionDomain(tokenM)

	assert.Equal(t, tokenM.ID, sub.ID)
	assert.Equal(t, "5min", sub.ReminderType)
	assert.True(t, sub.Enabled)
	assert.Equal(t, "ios", sub.Platform)
}

func TestFromDeliveryLogDomain(t *testing.T) {
	date, err := schedule.ParseCivilDate("2026-03-01")
	require.NoError(t, err)
	sentAt := time.Date(2026, time.February, 28, 23, 30, 5, 0, time.UTC)

	entry := &entity.DeliveryLogEntry{
		ID:             uuid.New(),
		DedupeKey:      "2026-03-01:abc:fajr:10-min-before",
		SubscriptionID: uuid.New(),
		Token:          "fcm-token",
		PrayerName:     entity.Fajr,
		ReminderType:   schedule.TenMinutesBefore,
		PrayerDate:     date,
		MessageID:      "projects/athan/messages/1",
		SentAt:         sentAt,
	}

	logM := fromDeliveryLogDomain(entry)

	assert.Equal(t, entry.DedupeKey, logM.DedupeKey)
	assert.Equal(t, "fajr", logM.PrayerName)
	assert.Equal(t, "10-min-before", logM.ReminderType)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), logM.PrayerDate)
	assert.Equal(t, "projects/athan/messages/1", logM.FCMMessageID)
	assert.Equal(t, sentAt, logM.SentAt)
}
