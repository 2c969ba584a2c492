package service

import (
	"context"

	"voltfeed/internal/domain/entity"
)

// IdentityProvider supplies the authenticated identity and its transitions.
// Transitions drive the start/stop lifecycle of the whole sync engine.
type IdentityProvider interface {
	// Current returns the identity state as of now.
	Current() entity.IdentityState

	// Subscribe returns a channel of identity transitions and a cancel
	// function. The current state is delivered first, then every change.
	// The channel is closed when ctx ends or cancel is called.
	Subscribe(ctx context.Context) (<-chan entity.IdentityState, func())
}
