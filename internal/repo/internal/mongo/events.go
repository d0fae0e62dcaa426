package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/errors"
	mng "github.com/nikmy/timekeeper/pkg/mongotools"
)

type Events struct {
	coll *mongo.Collection
}

func (e Events) Create(ctx context.Context, event models.UserEvent) (string, error) {
	event.ID = uuid.NewString()
	event.Start = event.Start.UTC()
	event.End = event.End.UTC()

	_, err := e.coll.InsertOne(ctx, event)
	if err != nil {
		return "", errors.WrapFail(err, "insert user event")
	}

	return event.ID, nil
}

func (e Events) Delete(ctx context.Context, organizationID string, id string) (bool, error) {
	r, err := e.coll.DeleteOne(ctx, bson.M{
		models.EventFieldID:             id,
		models.EventFieldOrganizationID: organizationID,
	})
	if err != nil {
		return false, errors.WrapFail(err, "delete user event")
	}

	return r.DeletedCount > 0, nil
}

func (e Events) ListByOrganization(ctx context.Context, organizationID string) ([]models.UserEvent, error) {
	c, err := e.coll.Find(
		ctx,
		mng.Field(models.EventFieldOrganizationID, &organizationID),
		options.Find().SetSort(mng.Sort(models.EventFieldStart, models.EventFieldID)),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find user events of organization")
	}

	events, err := mng.FilterFunc[models.UserEvent](ctx, c, nil)
	return events, errors.WrapFail(err, "read user events")
}
