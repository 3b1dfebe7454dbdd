// Package notification delivers credential events to the publisher off the request path.
package notification

import (
	"context"
	"log/slog"
	"sync"

	"schoolhub/config"
	"schoolhub/internal/domain/entity"
	"schoolhub/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultQueueSize = 256
)

type envelope struct {
	ctx   context.Context
	event *entity.CredentialEvent
}

// Dispatcher is a service.Notifier backed by a bounded queue and one worker.
// Delivery is at-most-once: a full queue drops the event and failed publishes
// are not retried.
type Dispatcher struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	cfg       *config.NotificationConfig

	queue chan envelope
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewDispatcher starts the worker on application start and drains the queue on stop.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	d := newDispatcher(params.Config.Notification, params.Publisher, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()

			return nil
		},
		OnStop: d.Stop,
	})

	return d
}

func newDispatcher(cfg *config.NotificationConfig, publisher service.EventPublisher, metrics service.MetricsRecorder, logger *slog.Logger) *Dispatcher {
	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}

	return &Dispatcher{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		queue:     make(chan envelope, size),
		done:      make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	go d.run()
}

// Emit enqueues the event without waiting for delivery. The request context is
// detached from cancellation so a finished request does not abort the publish.
func (d *Dispatcher) Emit(ctx context.Context, event *entity.CredentialEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, event, "dispatcher stopped")

		return
	}

	select {
	case d.queue <- envelope{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		d.drop(ctx, event, "queue full")
	}
}

func (d *Dispatcher) drop(ctx context.Context, event *entity.CredentialEvent, reason string) {
	d.metrics.Notification(service.OutcomeDropped)
	d.logger.WarnContext(ctx, "Credential notification dropped",
		slog.String("reason", reason),
		slog.Any("event", event),
	)
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for env := range d.queue {
		d.publish(env)
	}
}

func (d *Dispatcher) publish(env envelope) {
	ctx := env.ctx
	if d.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.PublishTimeout)
		defer cancel()
	}

	if err := d.publisher.PublishCredentialEvent(ctx, env.event); err != nil {
		d.metrics.Notification(service.OutcomeFailed)
		d.logger.ErrorContext(ctx, "Failed to publish credential notification",
			slog.Any("error", err),
			slog.Any("event", env.event),
		)

		return
	}

	d.metrics.Notification(service.OutcomePublished)
}

// Stop closes the queue and waits for queued events to be published, or for
// ctx to end.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Notification queue not drained before shutdown", slog.Int("pending", len(d.queue)))

		return ctx.Err()
	}
}

// Module provides the notification dispatcher as the service.Notifier
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewDispatcher,
		func(d *Dispatcher) service.Notifier { return d },
	),
)
