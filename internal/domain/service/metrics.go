package service

import "schoolhub/internal/domain/entity"

// Outcome labels shared by the recorders.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"

	OutcomePublished = "published"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

// MetricsRecorder counts domain events for operational dashboards.
type MetricsRecorder interface {
	LoginAttempt(role entity.Role, outcome string)
	AccountProvisioned(role entity.Role)
	ClassCreated()
	Notification(outcome string)
}
