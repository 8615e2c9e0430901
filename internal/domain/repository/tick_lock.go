// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// ReleaseFunc gives back a lock obtained from TickLock.
type ReleaseFunc func(ctx context.Context) error

// TickLock keeps two ticks from running the pipeline at the same time.
type TickLock interface {
	// TryAcquire returns ok=false without blocking when another tick holds the lock.
	TryAcquire(ctx context.Context) (release ReleaseFunc, ok bool, err error)
}
