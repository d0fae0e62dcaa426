package models

import (
	"context"
	"strings"

	"github.com/nikmy/timekeeper/pkg/errors"
)

type UsersRepo interface {
	Upsert(ctx context.Context, user User) error
	Get(ctx context.Context, organizationID string, id string) (*User, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]User, error)
}

type User struct {
	ID             string `json:"id"             bson:"_id"`
	OrganizationID string `json:"organizationId" bson:"organizationId"`
	DisplayName    string `json:"displayName"    bson:"displayName"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.Error("user id is empty")
	}
	if u.OrganizationID == "" {
		return errors.Error("user organization is empty")
	}
	if strings.TrimSpace(u.DisplayName) == "" {
		return errors.Errorf("user %s has no display name", u.ID)
	}
	return nil
}

const (
	UserFieldID             = "_id"
	UserFieldOrganizationID = "organizationId"
	UserFieldDisplayName    = "displayName"
	UserFieldEmail          = "email"
)
