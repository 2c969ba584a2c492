package usecase

import "context"

// SyncUsecase runs the synchronization engine: the identity-driven
// lifecycle, the push channel, and the polling loop.
type SyncUsecase interface {
	// Start begins watching identity transitions and drives the sync engine
	// until Stop is called.
	Start(ctx context.Context) error

	// Stop tears down the push channel and polling loop.
	Stop(ctx context.Context) error

	// SyncNow requests an immediate fetch outside the polling schedule.
	// Overlapping requests collapse into the in-flight fetch.
	SyncNow(ctx context.Context)
}
