package auth

import (
	"context"
	"slices"

	"github.com/nikmy/timekeeper/pkg/errors"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrNoPrincipal = errors.Error("no principal in context")

// Principal is whoever a request is made on behalf of. All reads and writes
// are scoped to its organization.
type Principal struct {
	UserID         string `yaml:"userId"`
	OrganizationID string `yaml:"organizationId"`
	Roles          []Role `yaml:"roles"`
}

func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// HasAnyRole reports whether p holds at least one of roles.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}
	return p, nil
}
