// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks that talk to external systems.
const DefaultTimeout = 10 * time.Second
