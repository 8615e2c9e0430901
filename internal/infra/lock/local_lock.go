package lock

import (
	"context"
	"sync"

	"athan/internal/domain/repository"
)

type localTickLock struct {
	mu sync.Mutex
}

// NewLocalTickLock creates a lock that only guards ticks within this process.
func NewLocalTickLock() repository.TickLock {
	return &localTickLock{}
}

func (l *localTickLock) TryAcquire(_ context.Context) (repository.ReleaseFunc, bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}

	var once sync.Once
	release := func(context.Context) error {
		once.Do(l.mu.Unlock)

		return nil
	}

	return release, true, nil
}
