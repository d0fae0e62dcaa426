package repo

import (
	"context"

	"github.com/nikmy/timekeeper/internal/repo/internal/mongo"
	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/txn"
)

type Config = mongo.Config

type Client interface {
	Users() models.UsersRepo
	Events() models.EventsRepo

	NewSession(c txn.Consistency) (txn.Session, error)
	Close(ctx context.Context) error
}

func NewMongoClient(ctx context.Context, cfg Config) (Client, error) {
	c, err := mongo.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}
