package pubsub

import (
	"context"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
)

// messageAttributes are visible to subscribers for filtering, so the template
// context, which holds the password, stays in the message body.
func messageAttributes(ctx context.Context, event *entity.CredentialEvent) map[string]string {
	attributes := map[string]string{
		"event":    event.Event,
		"template": event.Template,
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	return attributes
}
