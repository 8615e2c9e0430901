package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for tick report publishing
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Log field keys shared by the tick pipeline
const (
	LogKeyTickID = "tick_id"
)
