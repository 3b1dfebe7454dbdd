package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"schoolhub/config"
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type contextKey string

type publisherFake struct {
	mu      sync.Mutex
	events  []*entity.CredentialEvent
	ctxErrs []error
	values  []any
	err     error
	block   chan struct{}
}

func (p *publisherFake) PublishCredentialEvent(ctx context.Context, event *entity.CredentialEvent) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	p.values = append(p.values, ctx.Value(contextKey("request")))

	return p.err
}

func (p *publisherFake) Close() error { return nil }

func (p *publisherFake) published() []*entity.CredentialEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*entity.CredentialEvent(nil), p.events...)
}

type metricsFake struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newMetricsFake() *metricsFake {
	return &metricsFake{outcomes: map[string]int{}}
}

func (m *metricsFake) LoginAttempt(entity.Role, string) {}
func (m *metricsFake) AccountProvisioned(entity.Role)   {}
func (m *metricsFake) ClassCreated()                    {}

func (m *metricsFake) Notification(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *metricsFake) count(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.outcomes[outcome]
}

var _ service.MetricsRecorder = (*metricsFake)(nil)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func event(to string) *entity.CredentialEvent {
	return &entity.CredentialEvent{
		Event:    entity.EventSendEmail,
		To:       to,
		Subject:  entity.StudentPasswordSubject,
		Template: entity.StudentPasswordTemplate,
		Context:  entity.CredentialContext{FullName: "Grace Hopper", Password: "secret"},
	}
}

func TestDispatcher_PublishesQueuedEventsOnStop(t *testing.T) {
	publisher := &publisherFake{}
	metrics := newMetricsFake()
	d := newDispatcher(&config.NotificationConfig{QueueSize: 8, PublishTimeout: time.Second}, publisher, metrics, newDiscardLogger())
	d.Start()

	d.Emit(context.Background(), event("a@school.test"))
	d.Emit(context.Background(), event("b@school.test"))

	require.NoError(t, d.Stop(context.Background()))

	events := publisher.published()
	require.Len(t, events, 2)
	assert.Equal(t, "a@school.test", events[0].To)
	assert.Equal(t, "b@school.test", events[1].To)
	assert.Equal(t, 2, metrics.count(service.OutcomePublished))
}

func TestDispatcher_DetachesRequestCancellation(t *testing.T) {
	publisher := &publisherFake{}
	d := newDispatcher(&config.NotificationConfig{QueueSize: 1}, publisher, newMetricsFake(), newDiscardLogger())
	d.Start()

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), contextKey("request"), "req-9"))
	d.Emit(ctx, event("a@school.test"))
	cancel()

	require.NoError(t, d.Stop(context.Background()))

	require.Len(t, publisher.ctxErrs, 1)
	assert.NoError(t, publisher.ctxErrs[0])
	assert.Equal(t, "req-9", publisher.values[0])
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	publisher := &publisherFake{block: make(chan struct{})}
	metrics := newMetricsFake()
	d := newDispatcher(&config.NotificationConfig{QueueSize: 1}, publisher, metrics, newDiscardLogger())

	// Without a running worker the single slot fills immediately.
	d.Emit(context.Background(), event("a@school.test"))
	d.Emit(context.Background(), event("b@school.test"))
	assert.Equal(t, 1, metrics.count(service.OutcomeDropped))

	d.Start()
	close(publisher.block)
	require.NoError(t, d.Stop(context.Background()))

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "a@school.test", events[0].To)
}

func TestDispatcher_PublishFailureIsCountedNotRetried(t *testing.T) {
	publisher := &publisherFake{err: errors.New("broker down")}
	metrics := newMetricsFake()
	d := newDispatcher(&config.NotificationConfig{QueueSize: 4}, publisher, metrics, newDiscardLogger())
	d.Start()

	d.Emit(context.Background(), event("a@school.test"))
	require.NoError(t, d.Stop(context.Background()))

	assert.Len(t, publisher.published(), 1)
	assert.Equal(t, 1, metrics.count(service.OutcomeFailed))
	assert.Zero(t, metrics.count(service.OutcomePublished))
}

func TestDispatcher_EmitAfterStopDrops(t *testing.T) {
	publisher := &publisherFake{}
	metrics := newMetricsFake()
	d := newDispatcher(nil, publisher, metrics, newDiscardLogger())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	d.Emit(context.Background(), event("late@school.test"))

	assert.Empty(t, publisher.published())
	assert.Equal(t, 1, metrics.count(service.OutcomeDropped))
}

func TestDispatcher_StopHonoursDeadline(t *testing.T) {
	publisher := &publisherFake{block: make(chan struct{})}
	d := newDispatcher(&config.NotificationConfig{QueueSize: 2}, publisher, newMetricsFake(), newDiscardLogger())
	d.Start()
	d.Emit(context.Background(), event("a@school.test"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Stop(ctx), context.DeadlineExceeded)

	close(publisher.block)
	require.NoError(t, d.Stop(context.Background()))
}
