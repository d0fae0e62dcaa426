package txn

import (
	"context"
	"time"

	"github.com/nikmy/timekeeper/pkg/errors"
)

type sessionManager interface {
	NewSession(c Consistency) (Session, error)
}

func NewManager(m sessionManager, c Consistency) Manager {
	return Manager{sessionManager: m, consistency: c}
}

type Manager struct {
	sessionManager
	consistency Consistency
}

const closeTimeout = time.Second

// WithSession runs fn with a context bound to a fresh session and closes the
// session when fn returns.
func (m Manager) WithSession(parent context.Context, fn func(ctx context.Context) error) error {
	session, err := m.NewSession(m.consistency)
	if err != nil {
		return errors.WrapFailf(err, "start %s session", m.consistency)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(parent), closeTimeout)
		defer cancel()
		session.Close(closeCtx)
	}()

	return fn(session.BindContext(parent))
}
