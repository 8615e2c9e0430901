package impl

import (
	"context"
	"testing"
	"time"

	"athan/internal/domain/entity"
	mockRepo "athan/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fajrCandidates(t *testing.T, reminderTypes ...string) []entity.ReminderCandidate {
	t.Helper()

	today := mustDate(t, "2026-03-01")
	times := &entity.DailyPrayerTimes{Date: today, Fajr: strPtr("05:10")}
	subs := make([]*entity.PushSubscription, 0, len(reminderTypes))
	for _, rt := range reminderTypes {
		subs = append(subs, newSubscription(rt))
	}

	candidates, _ := GenerateCandidates(times, subs, today, mustMinute(t, "05:00"))

	return candidates
}

func TestDedupGate_Filter_DropsLoggedKeys(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, time.Second)

	candidates := fajrCandidates(t, "10-min-before", "10-min-before")
	require.Len(t, candidates, 2)

	logRepo.EXPECT().
		FindLoggedKeys(mock.Anything, []string{candidates[0].Key, candidates[1].Key}).
		Return(map[string]struct{}{candidates[0].Key: {}}, nil).
		Once()

	fresh, err := gate.Filter(context.Background(), candidates)

	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, candidates[1].Key, fresh[0].Key)
}

func TestDedupGate_Filter_AllLogged(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, time.Second)

	candidates := fajrCandidates(t, "10-min-before")
	logRepo.EXPECT().
		FindLoggedKeys(mock.Anything, mock.Anything).
		Return(map[string]struct{}{candidates[0].Key: {}}, nil)

	fresh, err := gate.Filter(context.Background(), candidates)

	require.NoError(t, err)
	assert.Empty(t, fresh)
}

func TestDedupGate_Filter_RunTwiceWithoutCommit(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, time.Second)

	candidates := fajrCandidates(t, "10-min-before", "10-min-before")
	logRepo.EXPECT().
		FindLoggedKeys(mock.Anything, mock.Anything).
		Return(map[string]struct{}{}, nil).
		Twice()

	first, err := gate.Filter(context.Background(), candidates)
	require.NoError(t, err)
	second, err := gate.Filter(context.Background(), candidates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDedupGate_Filter_EmptyInputSkipsStore(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, time.Second)

	fresh, err := gate.Filter(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, fresh)
	logRepo.AssertNotCalled(t, "FindLoggedKeys", mock.Anything, mock.Anything)
}

func TestDedupGate_Filter_LookupError(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, time.Second)

	logRepo.EXPECT().
		FindLoggedKeys(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	fresh, err := gate.Filter(context.Background(), fajrCandidates(t, "10-min-before"))

	require.Error(t, err)
	assert.Nil(t, fresh)
	assert.Contains(t, err.Error(), "failed to look up delivery log")
}

func TestDedupGate_Filter_BoundsLookupWithTimeout(t *testing.T) {
	logRepo := mockRepo.NewMockDeliveryLogRepository(t)
	gate := NewDedupGate(logRepo, 50*time.Millisecond)

	logRepo.EXPECT().
		FindLoggedKeys(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []string) (map[string]struct{}, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

			return map[string]struct{}{}, nil
		})

	_, err := gate.Filter(context.Background(), fajrCandidates(t, "at-iqamah", "10-min-before"))

	require.NoError(t, err)
}
