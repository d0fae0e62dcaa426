package txn

import "context"

type Session interface {
	// BindContext returns a context that routes operations through the session.
	BindContext(ctx context.Context) context.Context
	Close(ctx context.Context)
}

type Consistency int

const (
	// CausalConsistency means that reads within a session observe the
	// session's own preceding writes and everything they depend on.
	CausalConsistency Consistency = iota

	// SnapshotConsistency means that all reads within a session observe
	// the same majority-committed point in time.
	SnapshotConsistency
)

func (c Consistency) String() string {
	switch c {
	case CausalConsistency:
		return "causal"
	case SnapshotConsistency:
		return "snapshot"
	default:
		return "unknown"
	}
}
