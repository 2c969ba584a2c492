package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"voltfeed/config"
	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationRepository struct {
	client *client
	logger *slog.Logger
}

// RepositoryParams holds dependencies for the REST repository, injected by Fx.
type RepositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationRepository creates the HTTP-backed notification repository.
func NewNotificationRepository(params RepositoryParams) repository.NotificationRepository {
	return &notificationRepository{
		client: newClient(params.Config),
		logger: params.Logger,
	}
}

func userQuery(userID int64) url.Values {
	query := url.Values{}
	query.Set("userId", strconv.FormatInt(userID, 10))

	return query
}

// FetchNotifications retrieves the authoritative notification list for a
// user. A 404 means the user has no feed yet and maps to an empty list.
func (r *notificationRepository) FetchNotifications(ctx context.Context, userID int64) ([]*entity.NotificationRecord, error) {
	var records []*entity.NotificationRecord
	if err := r.client.get(ctx, "/notifications", userQuery(userID), &records); err != nil {
		if statusOf(errors.Cause(err)) == http.StatusNotFound {
			return []*entity.NotificationRecord{}, nil
		}

		return nil, errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return records, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	path := "/notifications/" + strconv.FormatInt(id, 10) + "/read"
	if err := r.client.patch(ctx, path, nil, nil); err != nil {
		if statusOf(errors.Cause(err)) == http.StatusNotFound {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	if err := r.client.patch(ctx, "/notifications/mark-all-read", userQuery(userID), nil); err != nil {
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return nil
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id int64) error {
	path := "/notifications/" + strconv.FormatInt(id, 10)
	if err := r.client.delete(ctx, path, nil, nil); err != nil {
		if statusOf(errors.Cause(err)) == http.StatusNotFound {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return nil
}

type registerTokenRequest struct {
	Token      string `json:"token"`
	DeviceType string `json:"deviceType"`
}

type unregisterTokenRequest struct {
	Token string `json:"token"`
}

func (r *notificationRepository) RegisterToken(ctx context.Context, userID int64, token, deviceType string) error {
	payload := registerTokenRequest{Token: token, DeviceType: deviceType}
	if err := r.client.post(ctx, "/fcm-tokens/register", userQuery(userID), payload); err != nil {
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return nil
}

func (r *notificationRepository) UnregisterToken(ctx context.Context, userID int64, token string) error {
	payload := unregisterTokenRequest{Token: token}
	if err := r.client.delete(ctx, "/fcm-tokens/unregister", userQuery(userID), payload); err != nil {
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}

	return nil
}
