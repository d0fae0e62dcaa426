package mongo

import (
	"cmp"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/errors"
)

var (
	usersIndex = mongo.IndexModel{
		Keys:    bson.D{{Key: models.UserFieldOrganizationID, Value: 1}, {Key: models.UserFieldDisplayName, Value: 1}},
		Options: options.Index().SetName("org_display_name"),
	}

	eventsIndex = mongo.IndexModel{
		Keys:    bson.D{{Key: models.EventFieldOrganizationID, Value: 1}, {Key: models.EventFieldStart, Value: 1}},
		Options: options.Index().SetName("org_start"),
	}
)

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)

	c := &Client{
		c:      client,
		users:  Users{coll: db.Collection(cmp.Or(cfg.Collections.Users, defaultUsersCollection))},
		events: Events{coll: db.Collection(cmp.Or(cfg.Collections.Events, defaultEventsCollection))},
	}

	err = c.ensureIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return c, nil
}

type Client struct {
	c      *mongo.Client
	users  Users
	events Events
}

func (c *Client) Users() models.UsersRepo {
	return c.users
}

func (c *Client) Events() models.EventsRepo {
	return c.events
}

func (c *Client) Close(ctx context.Context) error {
	return errors.WrapFail(c.c.Disconnect(ctx), "disconnect from mongo db")
}

func (c *Client) ensureIndexes(ctx context.Context) error {
	_, err := c.users.coll.Indexes().CreateOne(ctx, usersIndex)
	if err != nil {
		return errors.WrapFail(err, "create users index")
	}

	_, err = c.events.coll.Indexes().CreateOne(ctx, eventsIndex)
	if err != nil {
		return errors.WrapFail(err, "create events index")
	}

	return nil
}
