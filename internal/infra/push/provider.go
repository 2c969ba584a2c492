// Package push implements the push delivery channel providers.
package push

import (
	"context"
	"log/slog"

	"voltfeed/config"
	"voltfeed/internal/domain/constants"
	"voltfeed/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// unavailableProvider is used when no push channel is configured. Every
// acquisition fails with ErrPushUnavailable so the client degrades to
// polling-only operation.
type unavailableProvider struct {
	logger *slog.Logger
}

func (p *unavailableProvider) RequestPermission(_ context.Context) (service.Permission, error) {
	return "", service.ErrPushUnavailable
}

func (p *unavailableProvider) Token(_ context.Context) (string, error) {
	return "", service.ErrPushUnavailable
}

func (p *unavailableProvider) Subscribe(_ context.Context, _ func(service.PushPayload)) (service.Subscription, error) {
	p.logger.Debug("[Push] No provider configured, subscription unavailable")

	return nil, service.ErrPushUnavailable
}

// ProviderParams holds dependencies for PushProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// ProviderResult bundles the provider with the optional local bridge so the
// push-ingress server can reach the bridge directly.
type ProviderResult struct {
	fx.Out

	Provider service.PushProvider
	Bridge   *Bridge
}

// NewPushProvider creates a PushProvider based on configuration.
func NewPushProvider(params ProviderParams) (ProviderResult, error) {
	cfg := params.Config.Push
	logger := params.Logger

	// No push configured: run polling-only.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push not configured, running polling-only")

		return ProviderResult{Provider: &unavailableProvider{logger: logger}}, nil
	}

	permission := service.PermissionGranted
	if cfg.Permission == string(service.PermissionDenied) {
		permission = service.PermissionDenied
	}

	switch cfg.Provider {
	case constants.PushProviderLocal:
		logger.Info("Using local push-ingress provider",
			slog.Int("ingress_port", cfg.IngressPort),
		)

		bridge := NewBridge(logger, permission)

		return ProviderResult{Provider: bridge, Bridge: bridge}, nil

	case constants.PushProviderPubSub:
		if cfg.ProjectID == "" {
			return ProviderResult{}, errors.New("project ID is required for pubsub provider")
		}
		if cfg.SubscriptionID == "" {
			return ProviderResult{}, errors.New("subscription ID is required for pubsub provider")
		}
		logger.Info("Using Google Pub/Sub push provider",
			slog.String("project_id", cfg.ProjectID),
			slog.String("subscription_id", cfg.SubscriptionID),
		)

		provider, err := NewPubSubProvider(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, permission, logger)
		if err != nil {
			return ProviderResult{}, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing push provider")

				return provider.Close()
			},
		})

		return ProviderResult{Provider: provider}, nil

	default:
		return ProviderResult{}, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushProvider),
)
