// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// DefaultRegionCeiling is the platform cap on concurrently monitored regions.
	DefaultRegionCeiling = 20
)
