package ports

import "context"

// Snapshot entry names. One entry holds the serialized wallet, one the
// serialized transaction list. Existing snapshots use these names; do not
// rename them.
const (
	SnapshotKeyWallet       = "novapay_wallet"
	SnapshotKeyTransactions = "novapay_txs"
)

// SnapshotStore persists named state snapshots as opaque byte blobs.
// Implementations back onto a local file directory or Redis.
type SnapshotStore interface {
	// Get returns the stored blob for key, or nil, nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "file", "redis").
	Name() string
}
