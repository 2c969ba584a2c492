package impl

import (
	"strconv"

	"voltfeed/internal/domain/entity"
	"voltfeed/internal/usecase"
)

type displayRouter struct{}

// NewDisplayRouter creates the navigation target resolver.
func NewDisplayRouter() usecase.DisplayRouter {
	return &displayRouter{}
}

// Resolve maps a notification to its in-app destination. Session-lifecycle
// and reservation notifications route to their referenced entity; a
// session-lifecycle notification without a reference falls back to the
// sessions list.
func (r *displayRouter) Resolve(notificationType entity.NotificationType, referenceID *int64) string {
	switch {
	case notificationType.IsSessionLifecycle():
		if referenceID == nil {
			return "sessions"
		}

		return "sessions/" + strconv.FormatInt(*referenceID, 10)

	case notificationType == entity.TypeReservation:
		if referenceID == nil {
			return ""
		}

		return "reservations/" + strconv.FormatInt(*referenceID, 10)

	case notificationType == entity.TypePayment:
		return "wallet/payments"

	case notificationType == entity.TypeWallet:
		return "wallet"

	default:
		return ""
	}
}
