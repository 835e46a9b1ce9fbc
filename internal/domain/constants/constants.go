// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used for local development.
	EnvDevelop = "develop"
)

// Fan-out transport providers selectable through pubsub.provider.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)
