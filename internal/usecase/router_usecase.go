package usecase

import "voltfeed/internal/domain/entity"

// DisplayRouter maps a notification to the in-app destination a tap should
// open. Resolution is pure: same input, same target.
type DisplayRouter interface {
	// Resolve returns the navigation target for a notification, or the empty
	// string when the notification has no destination.
	Resolve(notificationType entity.NotificationType, referenceID *int64) string
}
