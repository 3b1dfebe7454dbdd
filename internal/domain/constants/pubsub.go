// Package constants holds values shared across layers.
package constants

// Pub/Sub providers accepted in config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
