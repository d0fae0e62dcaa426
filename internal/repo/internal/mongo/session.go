package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/txn"
)

func (c *Client) NewSession(consistency txn.Consistency) (txn.Session, error) {
	opts := options.Session()

	switch consistency {
	case txn.SnapshotConsistency:
		opts.SetSnapshot(true)
	case txn.CausalConsistency:
		opts.SetCausalConsistency(true)
	default:
		return nil, errors.Errorf("unsupported consistency %s", consistency)
	}

	s, err := c.c.StartSession(opts)
	if err != nil {
		return nil, errors.WrapFail(err, "start mongo session")
	}

	return session{s: s}, nil
}

type session struct {
	s mongo.Session
}

func (s session) BindContext(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.s)
}

func (s session) Close(ctx context.Context) {
	s.s.EndSession(ctx)
}
