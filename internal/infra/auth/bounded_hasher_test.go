package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"schoolhub/internal/errors"
)

// blockingHasher records peak concurrency and blocks until released.
type blockingHasher struct {
	active  atomic.Int32
	peak    atomic.Int32
	release chan struct{}
}

func (h *blockingHasher) enter() {
	n := h.active.Add(1)
	for {
		peak := h.peak.Load()
		if n <= peak || h.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	<-h.release
	h.active.Add(-1)
}

func (h *blockingHasher) Hash(_ context.Context, password string) (string, error) {
	h.enter()
	return "hash:" + password, nil
}

func (h *blockingHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	h.enter()
	return hash == "hash:"+password, nil
}

func TestBoundedHasher_LimitsConcurrency(t *testing.T) {
	inner := &blockingHasher{release: make(chan struct{})}
	hasher := newBoundedHasher(inner, 2)

	var wg sync.WaitGroup
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = hasher.Hash(context.Background(), "pw")
		}()
	}

	assert.Eventually(t, func() bool { return inner.active.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(inner.release)
	wg.Wait()

	assert.Equal(t, int32(2), inner.peak.Load())
}

func TestBoundedHasher_WaitHonoursContext(t *testing.T) {
	inner := &blockingHasher{release: make(chan struct{})}
	hasher := newBoundedHasher(inner, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = hasher.Hash(context.Background(), "holder")
	}()
	require.Eventually(t, func() bool { return inner.active.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err := hasher.Verify(ctx, "pw", "hash:pw")
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	close(inner.release)
	<-done
}

func TestBoundedHasher_DelegatesToBcrypt(t *testing.T) {
	hasher := newBoundedHasher(NewBcryptHasherWithCost(bcrypt.MinCost), 0)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "Kp7#wqRt2mZx")
	require.NoError(t, err)

	ok, err := hasher.Verify(ctx, "Kp7#wqRt2mZx", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
