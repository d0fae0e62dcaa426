package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/errors"
	mng "github.com/nikmy/timekeeper/pkg/mongotools"
)

type Users struct {
	coll *mongo.Collection
}

func (u Users) Upsert(ctx context.Context, user models.User) error {
	var email *string
	if user.Email != "" {
		email = &user.Email
	}

	update := mng.SetAll(
		mng.Field(models.UserFieldOrganizationID, &user.OrganizationID),
		mng.Field(models.UserFieldDisplayName, &user.DisplayName),
		mng.Field(models.UserFieldEmail, email),
	)

	_, err := u.coll.UpdateOne(ctx, mng.ID(user.ID), update, options.Update().SetUpsert(true))
	return errors.WrapFail(err, "upsert user")
}

func (u Users) Get(ctx context.Context, organizationID string, id string) (*models.User, error) {
	r := u.coll.FindOne(ctx, bson.M{
		models.UserFieldID:             id,
		models.UserFieldOrganizationID: organizationID,
	})

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find user by id")
	}

	var user models.User
	err = r.Decode(&user)
	if err != nil {
		return nil, errors.WrapFail(err, "decode user")
	}

	return &user, nil
}

func (u Users) ListByOrganization(ctx context.Context, organizationID string) ([]models.User, error) {
	c, err := u.coll.Find(
		ctx,
		mng.Field(models.UserFieldOrganizationID, &organizationID),
		options.Find().SetSort(mng.Sort(models.UserFieldDisplayName, models.UserFieldID)),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find users of organization")
	}

	users, err := mng.FilterFunc[models.User](ctx, c, nil)
	return users, errors.WrapFail(err, "read users")
}
