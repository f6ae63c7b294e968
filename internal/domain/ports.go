package domain

import "context"

// SnapshotRepo produces metrics snapshots. Implementations degrade
// gracefully where they can; a returned error means the caller should
// keep showing the previous snapshot.
type SnapshotRepo interface {
	Fetch(ctx context.Context) (Snapshot, error)
}
