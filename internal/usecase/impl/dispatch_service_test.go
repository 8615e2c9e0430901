package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"athan/config"
	"athan/internal/domain/entity"
	"athan/internal/domain/repository"
	"athan/internal/domain/service"
	mockRepo "athan/internal/mocks/repository"
	mockSvc "athan/internal/mocks/service"
	"athan/internal/schedule"
	"athan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 05:00 on 2026-03-01 in Colombo.
var tickInstant = time.Date(2026, time.February, 28, 23, 30, 0, 0, time.UTC)

type dispatchTestDeps struct {
	prayerRepo *mockRepo.MockPrayerTimeRepository
	subRepo    *mockRepo.MockSubscriptionRepository
	logRepo    *mockRepo.MockDeliveryLogRepository
	lock       *mockRepo.MockTickLock
	pushSvc    *mockSvc.MockPushService
	publisher  *mockSvc.MockEventPublisher
	metrics    *mockSvc.MockDispatchMetrics
	released   *bool
}

func testDispatchConfig() *config.Config {
	return &config.Config{
		Dispatch: config.DispatchConfig{
			TimeZone:     "Asia/Colombo",
			Workers:      2,
			Body:         "Prepare for Sunnah Salah",
			SendTimeout:  time.Second,
			StoreTimeout: time.Second,
			TickTimeout:  5 * time.Second,
		},
	}
}

func testResolver(t *testing.T) *schedule.Resolver {
	t.Helper()

	resolver, err := schedule.NewResolver("Asia/Colombo", schedule.WithClock(func() time.Time { return tickInstant }))
	require.NoError(t, err)

	return resolver
}

func createTestDispatchService(t *testing.T) (usecase.DispatchUsecase, *dispatchTestDeps) {
	deps := &dispatchTestDeps{
		prayerRepo: mockRepo.NewMockPrayerTimeRepository(t),
		subRepo:    mockRepo.NewMockSubscriptionRepository(t),
		logRepo:    mockRepo.NewMockDeliveryLogRepository(t),
		lock:       mockRepo.NewMockTickLock(t),
		pushSvc:    mockSvc.NewMockPushService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		metrics:    mockSvc.NewMockDispatchMetrics(t),
		released:   new(bool),
	}

	svc := NewDispatchService(DispatchServiceParams{
		Config:           testDispatchConfig(),
		Logger:           discardLogger(),
		Resolver:         testResolver(t),
		PrayerTimeRepo:   deps.prayerRepo,
		SubscriptionRepo: deps.subRepo,
		DeliveryLogRepo:  deps.logRepo,
		TickLock:         deps.lock,
		PushSvc:          deps.pushSvc,
		Publisher:        deps.publisher,
		Metrics:          deps.metrics,
	})

	return svc, deps
}

func (d *dispatchTestDeps) expectLockAcquired() {
	released := d.released
	d.lock.EXPECT().TryAcquire(mock.Anything).Return(repository.ReleaseFunc(func(context.Context) error {
		*released = true

		return nil
	}), true, nil).Once()
}

func fajrTimes(t *testing.T) *entity.DailyPrayerTimes {
	return &entity.DailyPrayerTimes{Date: mustDate(t, "2026-03-01"), Fajr: strPtr("5:10 AM"), Dhuhr: strPtr("12:15 PM")}
}

func TestDispatchService_RunTick_DeliversAndLogs(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	ctx := context.Background()
	sub := newSubscription("10-min-before")
	wantKey := "2026-03-01:" + sub.ID.String() + ":fajr:10-min-before"

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mustDate(t, "2026-03-01")).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, []string{wantKey}).Return(map[string]struct{}{}, nil)
	deps.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return("projects/athan/messages/42", nil)
	deps.logRepo.EXPECT().
		AppendEntries(mock.Anything, mock.MatchedBy(func(entries []*entity.DeliveryLogEntry) bool {
			return len(entries) == 1 &&
				entries[0].DedupeKey == wantKey &&
				entries[0].SubscriptionID == sub.ID &&
				entries[0].MessageID == "projects/athan/messages/42"
		})).
		Return(int64(1), nil)
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	deps.publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(nil)

	report, err := svc.RunTick(ctx)

	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", report.Date)
	assert.Equal(t, "05:00", report.Minute)
	assert.Equal(t, 1, report.Candidates)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, int64(1), report.LogsWritten)
	assert.NotEmpty(t, report.TickID)
	assert.True(t, *deps.released)
}

func TestDispatchService_RunTick_AlreadyLoggedSkipsSend(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	sub := newSubscription("10-min-before")
	key := "2026-03-01:" + sub.ID.String() + ":fajr:10-min-before"

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, []string{key}).Return(map[string]struct{}{key: {}}, nil)
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	deps.publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(nil)

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Candidates)
	assert.Equal(t, 1, report.AlreadyDelivered)
	assert.Zero(t, report.Delivered)
	deps.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	deps.logRepo.AssertNotCalled(t, "AppendEntries", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_RegistrationGoneDeletesSubscription(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	sub := newSubscription("10-min-before")
	// Same device registered for a reminder type that is not due this minute.
	sibling := newSubscription("at-adhan")
	sibling.Token = sub.Token
	other := newSubscription("at-iqamah")

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub, sibling, other}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, mock.Anything).Return(map[string]struct{}{}, nil)
	deps.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return("", errors.New("Requested entity was not found: registration not found"))
	deps.subRepo.EXPECT().
		DeleteByIDs(mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 2 && ids[0] == sub.ID && ids[1] == sibling.ID
		})).
		Return(int64(2), nil)
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	deps.publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(nil)

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.TokenInvalid)
	assert.Zero(t, report.Delivered)
	assert.Equal(t, int64(2), report.SubscriptionsDeleted)
	deps.logRepo.AssertNotCalled(t, "AppendEntries", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_TransientFailureLeavesEventEligible(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	sub := newSubscription("10-min-before")

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, mock.Anything).Return(map[string]struct{}{}, nil)
	deps.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return("", errors.New("unavailable"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	deps.publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.TransientFailures)
	deps.logRepo.AssertNotCalled(t, "AppendEntries", mock.Anything, mock.Anything)
	deps.subRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_LedgerErrorIsReported(t *testing.T) {
	svc, deps := createTestDispatchService(t)
	sub := newSubscription("10-min-before")

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, mock.Anything).Return(map[string]struct{}{}, nil)
	deps.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return("id", nil)
	deps.logRepo.EXPECT().AppendEntries(mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	deps.publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(nil)

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	require.Len(t, report.LedgerErrors, 1)
	assert.Contains(t, report.LedgerErrors[entity.LedgerOpAppendLog], "connection reset")
}

func TestDispatchService_RunTick_LockHeld(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.lock.EXPECT().TryAcquire(mock.Anything).Return(nil, false, nil)
	deps.metrics.EXPECT().
		ObserveTick(mock.MatchedBy(func(r *entity.TickReport) bool { return r.Skipped == entity.TickSkippedLocked }), nil).
		Return()

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.TickSkippedLocked, report.Skipped)
	deps.prayerRepo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_LockError(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.lock.EXPECT().TryAcquire(mock.Anything).Return(nil, false, errors.New("redis: connection refused"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, mock.Anything).Return()

	_, err := svc.RunTick(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to acquire tick lock")
}

func TestDispatchService_RunTick_NoPrayerTimes(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(nil, repository.ErrPrayerTimesNotFound)
	deps.metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()

	report, err := svc.RunTick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.TickSkippedNoPrayerTimes, report.Skipped)
	assert.True(t, *deps.released)
	deps.subRepo.AssertNotCalled(t, "FindEnabled", mock.Anything)
}

func TestDispatchService_RunTick_PrayerFetchFailureAborts(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, mock.Anything).Return()

	_, err := svc.RunTick(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch prayer times")
	assert.True(t, *deps.released)
	deps.subRepo.AssertNotCalled(t, "FindEnabled", mock.Anything)
	deps.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_SubscriptionFetchFailureAborts(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return(nil, errors.New("timeout"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, mock.Anything).Return()

	_, err := svc.RunTick(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch subscriptions")
	deps.logRepo.AssertNotCalled(t, "FindLoggedKeys", mock.Anything, mock.Anything)
}

func TestDispatchService_RunTick_DedupLookupFailureAborts(t *testing.T) {
	svc, deps := createTestDispatchService(t)

	deps.expectLockAcquired()
	deps.prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	deps.subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{newSubscription("10-min-before")}, nil)
	deps.logRepo.EXPECT().FindLoggedKeys(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	deps.metrics.EXPECT().ObserveTick(mock.Anything, mock.Anything).Return()

	_, err := svc.RunTick(context.Background())

	require.Error(t, err)
	deps.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

// memoryDeliveryLog enforces key uniqueness the way the dedupe_key index does.
type memoryDeliveryLog struct {
	mu   sync.Mutex
	rows map[string]*entity.DeliveryLogEntry
}

func (m *memoryDeliveryLog) FindLoggedKeys(_ context.Context, keys []string) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logged := make(map[string]struct{})
	for _, key := range keys {
		if _, ok := m.rows[key]; ok {
			logged[key] = struct{}{}
		}
	}

	return logged, nil
}

func (m *memoryDeliveryLog) AppendEntries(_ context.Context, entries []*entity.DeliveryLogEntry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var written int64
	for _, entry := range entries {
		if _, ok := m.rows[entry.DedupeKey]; ok {
			continue
		}
		m.rows[entry.DedupeKey] = entry
		written++
	}

	return written, nil
}

type noopTickLock struct{}

func (noopTickLock) TryAcquire(context.Context) (repository.ReleaseFunc, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

// Two overlapping ticks both pass the gate; the store still ends with one row.
func TestDispatchService_RunTick_OverlappingTicksLogOnce(t *testing.T) {
	prayerRepo := mockRepo.NewMockPrayerTimeRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockDispatchMetrics(t)
	logStore := &memoryDeliveryLog{rows: make(map[string]*entity.DeliveryLogEntry)}

	sub := newSubscription("10-min-before")
	prayerRepo.EXPECT().FindByDate(mock.Anything, mock.Anything).Return(fajrTimes(t), nil)
	subRepo.EXPECT().FindEnabled(mock.Anything).Return([]*entity.PushSubscription{sub}, nil)
	metrics.EXPECT().ObserveTick(mock.Anything, nil).Return()
	publisher.EXPECT().PublishTickReport(mock.Anything, mock.Anything).Return(nil)

	var sends sync.WaitGroup
	sends.Add(2)
	pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.PushMessage) (string, error) {
			// Hold both sends until each tick has passed the gate.
			sends.Done()
			sends.Wait()

			return "id", nil
		}).
		Times(2)

	svc := NewDispatchService(DispatchServiceParams{
		Config:           testDispatchConfig(),
		Logger:           discardLogger(),
		Resolver:         testResolver(t),
		PrayerTimeRepo:   prayerRepo,
		SubscriptionRepo: subRepo,
		DeliveryLogRepo:  logStore,
		TickLock:         noopTickLock{},
		PushSvc:          pushSvc,
		Publisher:        publisher,
		Metrics:          metrics,
	})

	var (
		wg      sync.WaitGroup
		reports [2]*entity.TickReport
	)
	for i := range reports {
		wg.Add(1)
		go func() {
			defer wg.Done()

			report, err := svc.RunTick(context.Background())
			assert.NoError(t, err)
			reports[i] = report
		}()
	}
	wg.Wait()

	assert.Len(t, logStore.rows, 1)
	assert.Equal(t, int64(1), reports[0].LogsWritten+reports[1].LogsWritten)

	// A later tick in the same minute finds the key logged.
	report, err := svc.RunTick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.AlreadyDelivered)
	assert.Zero(t, report.Delivered)
}
