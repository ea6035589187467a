// Package substrate provides the pluggable persistence backends the local
// locker store snapshots itself into. A substrate holds exactly one opaque
// blob: the serialized database image.
package substrate

import "context"

// Substrate persists one snapshot blob.
type Substrate interface {
	// Name identifies the substrate in logs and status output.
	Name() string
	// Load returns the stored snapshot. The second result reports whether a
	// snapshot existed at all; (nil, false, nil) is a clean first run.
	Load(ctx context.Context) ([]byte, bool, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, data []byte) error
	// Drop removes the stored snapshot so the next Load reports first-run.
	Drop(ctx context.Context) error
}
