package service

import (
	"context"

	"schoolhub/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCredentialEvent publishes a send_email event for the mailer
	PublishCredentialEvent(ctx context.Context, event *entity.CredentialEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Notifier hands credential events to asynchronous delivery. Emit never blocks
// on delivery and reports nothing back.
type Notifier interface {
	Emit(ctx context.Context, event *entity.CredentialEvent)
}
