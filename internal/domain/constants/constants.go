// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// PushProviderLocal receives deliveries through the local push-ingress
	// HTTP endpoint (development).
	PushProviderLocal = "local"
	// PushProviderPubSub receives deliveries through a Google Pub/Sub
	// subscription.
	PushProviderPubSub = "pubsub"

	// DefaultDeviceType is the device-class label sent with token
	// registrations.
	DefaultDeviceType = "web"
)
