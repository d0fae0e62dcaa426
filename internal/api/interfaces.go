package api

import (
	"context"

	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type checker interface {
	CheckRaw(ctx context.Context, start, end string) (*availability.Result, error)
}

type authorizer interface {
	Authorize(header string) (auth.Principal, bool)
}
