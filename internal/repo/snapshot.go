package repo

import (
	"context"

	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/txn"
)

// NewSnapshotReader reads the roster and events of the caller's organization
// within one session of the given consistency.
func NewSnapshotReader(client Client, consistency txn.Consistency) *SnapshotReader {
	return &SnapshotReader{
		client:   client,
		sessions: txn.NewManager(client, consistency),
	}
}

type SnapshotReader struct {
	client   Client
	sessions txn.Manager
}

func (r *SnapshotReader) ReadSnapshot(ctx context.Context, _ availability.TimeWindow) (availability.Snapshot, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return availability.Snapshot{}, err
	}

	var (
		users  []models.User
		events []models.UserEvent
	)

	err = r.sessions.WithSession(ctx, func(ctx context.Context) error {
		var err error

		users, err = r.client.Users().ListByOrganization(ctx, principal.OrganizationID)
		if err != nil {
			return errors.WrapFail(err, "list users")
		}

		events, err = r.client.Events().ListByOrganization(ctx, principal.OrganizationID)
		return errors.WrapFail(err, "list user events")
	})
	if err != nil {
		return availability.Snapshot{}, err
	}

	return availability.Snapshot{
		Users:  toUsers(users),
		Events: toEvents(events),
	}, nil
}

func toUsers(users []models.User) []availability.User {
	out := make([]availability.User, 0, len(users))
	for _, u := range users {
		out = append(out, availability.User{
			ID:          availability.UserID(u.ID),
			DisplayName: u.DisplayName,
			Email:       u.Email,
		})
	}
	return out
}

func toEvents(events []models.UserEvent) []availability.Event {
	out := make([]availability.Event, 0, len(events))
	for _, e := range events {
		attendees := make([]availability.UserID, 0, len(e.Attendees))
		for _, a := range e.Attendees {
			attendees = append(attendees, availability.UserID(a))
		}

		out = append(out, availability.Event{
			ID:        e.ID,
			Start:     e.Start.UTC(),
			End:       e.End.UTC(),
			Attendees: attendees,
		})
	}
	return out
}
