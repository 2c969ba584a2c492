// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// NotificationType categorizes a notification and drives click routing.
type NotificationType string

const (
	// TypeChargingStarted is sent when a charging session begins.
	TypeChargingStarted NotificationType = "charging_started"
	// TypeChargingComplete is sent when a charging session finishes.
	TypeChargingComplete NotificationType = "charging_complete"
	// TypeChargingInterrupted is sent when a charging session stops unexpectedly.
	TypeChargingInterrupted NotificationType = "charging_interrupted"
	// TypePayment is sent for payment receipts and failures.
	TypePayment NotificationType = "payment"
	// TypeReservation is sent for reservation confirmations and expiries.
	TypeReservation NotificationType = "reservation"
	// TypeWallet is sent for wallet balance events (top-up, low balance).
	TypeWallet NotificationType = "wallet"
	// TypeSystem is the generic fallback category.
	TypeSystem NotificationType = "system"
)

// ParseNotificationType maps a raw category string to a known type.
// Unrecognized or empty values fall back to TypeSystem.
func ParseNotificationType(raw string) NotificationType {
	switch NotificationType(raw) {
	case TypeChargingStarted, TypeChargingComplete, TypeChargingInterrupted,
		TypePayment, TypeReservation, TypeWallet, TypeSystem:
		return NotificationType(raw)
	default:
		return TypeSystem
	}
}

// IsSessionLifecycle reports whether the type belongs to the charging
// session lifecycle family.
func (t NotificationType) IsSessionLifecycle() bool {
	return t == TypeChargingStarted || t == TypeChargingComplete || t == TypeChargingInterrupted
}

// NotificationRecord is a single entry in a user's notification feed.
//
// Records delivered over the push channel before the backend has assigned an
// id carry a locally synthesized negative id until the next poll reconciles
// them with the server-assigned positive id.
type NotificationRecord struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	ReferenceID *int64           `json:"referenceId,omitempty"` // Optional pointer to a domain entity (session, reservation).
	IsRead      bool             `json:"isRead"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// IsLocal reports whether the record still carries a synthesized local id.
func (n *NotificationRecord) IsLocal() bool {
	return n.ID < 0
}

// PushRegistration binds a push-provider token to the identity it is
// currently registered against. At most one registration is active per
// client instance.
type PushRegistration struct {
	Token       string    `json:"token"`
	OwnerUserID int64     `json:"ownerUserId"`
	DeviceType  string    `json:"deviceType"`
	CreatedAt   time.Time `json:"createdAt"`
}
