package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"voltfeed/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// pubsubMessage is the JSON shape the backend publishes per delivery.
type pubsubMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// pubsubProvider implements PushProvider over a Google Pub/Sub subscription.
// The subscription's fully-qualified name doubles as the delivery token the
// backend registers for this client.
type pubsubProvider struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionPath string
	permission       service.Permission
	logger           *slog.Logger
}

// NewPubSubProvider creates a Pub/Sub-backed push provider.
func NewPubSubProvider(ctx context.Context, projectID, subscriptionID string, permission service.Permission, logger *slog.Logger) (*pubsubProvider, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if subscription exists using SubscriptionAdminClient
	subscriptionPath := fmt.Sprintf("projects/%s/subscriptions/%s", projectID, subscriptionID)
	_, err = client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: subscriptionPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get subscription %s", subscriptionID)
	}

	logger.Info("Google Pub/Sub push provider initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &pubsubProvider{
		client:           client,
		subscriber:       client.Subscriber(subscriptionID),
		subscriptionPath: subscriptionPath,
		permission:       permission,
		logger:           logger,
	}, nil
}

func (p *pubsubProvider) RequestPermission(_ context.Context) (service.Permission, error) {
	return p.permission, nil
}

func (p *pubsubProvider) Token(_ context.Context) (string, error) {
	if p.permission != service.PermissionGranted {
		return "", service.ErrPushUnavailable
	}

	return p.subscriptionPath, nil
}

// Subscribe starts a background Receive loop that feeds the handler. The
// loop ends when Unsubscribe is called or ctx is done.
func (p *pubsubProvider) Subscribe(ctx context.Context, handler func(service.PushPayload)) (service.Subscription, error) {
	receiveCtx, cancel := context.WithCancel(ctx)

	go func() {
		err := p.subscriber.Receive(receiveCtx, func(_ context.Context, msg *pubsub.Message) {
			var parsed pubsubMessage
			if err := json.Unmarshal(msg.Data, &parsed); err != nil {
				p.logger.Warn("[Push] Dropping malformed Pub/Sub message",
					slog.String("error", err.Error()),
				)
				msg.Ack()

				return
			}

			handler(service.PushPayload{
				Title: parsed.Title,
				Body:  parsed.Body,
				Data:  parsed.Data,
			})
			msg.Ack()
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Error("[Push] Pub/Sub receive loop ended",
				slog.String("error", err.Error()),
			)
		}
	}()

	return &pubsubSubscription{cancel: cancel}, nil
}

// Close releases Pub/Sub client resources
func (p *pubsubProvider) Close() error {
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

type pubsubSubscription struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (s *pubsubSubscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
