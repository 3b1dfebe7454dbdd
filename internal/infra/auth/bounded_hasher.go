package auth

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"schoolhub/config"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/errors"
)

// boundedHasher limits how many hash/verify calls run at once so a burst of
// logins cannot saturate every CPU.
type boundedHasher struct {
	next  service.CredentialHasher
	slots *semaphore.Weighted
}

// NewBoundedHasher wraps next with cfg.Auth.HashConcurrency slots, GOMAXPROCS when unset.
func NewBoundedHasher(cfg *config.Config, next service.CredentialHasher) service.CredentialHasher {
	limit := 0
	if cfg.Auth != nil {
		limit = cfg.Auth.HashConcurrency
	}

	return newBoundedHasher(next, limit)
}

func newBoundedHasher(next service.CredentialHasher, limit int) *boundedHasher {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	return &boundedHasher{
		next:  next,
		slots: semaphore.NewWeighted(int64(limit)),
	}
}

func (h *boundedHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "wait for hash slot")
	}
	defer h.slots.Release(1)

	return h.next.Hash(ctx, password)
}

func (h *boundedHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "wait for hash slot")
	}
	defer h.slots.Release(1)

	return h.next.Verify(ctx, password, hash)
}
