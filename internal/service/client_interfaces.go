package service

import (
	"context"
)

// ChangeWatcher detects local clipboard changes and uploads them to the
// relay. Tick performs one observation; the sync job calls it on the watch
// interval.
type ChangeWatcher interface {
	// Tick reads the local clipboard once and uploads it when its
	// fingerprint changed. It does nothing while a remote write is being
	// applied or the protection window is open. Every error is terminal for
	// the observation: nothing is retried.
	Tick(ctx context.Context) error
}

// SyncPuller polls the relay and applies records uploaded by other devices
// to the local clipboard.
type SyncPuller interface {
	// Tick fetches the relay once using the current cursor and applies a
	// newer record from another device.
	Tick(ctx context.Context) error

	// ManualSync fetches the relay without a cursor and applies whatever it
	// holds, including records this device uploaded itself. It returns
	// ErrRelayEmpty when nothing has been uploaded yet.
	ManualSync(ctx context.Context) error
}

// ClientSyncJob runs the watcher and the puller in the background.
type ClientSyncJob interface {
	// Start launches both loops. Any previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context)

	// Stop signals the loops to exit and blocks until they have returned.
	Stop()
}
