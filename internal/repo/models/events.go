package models

import (
	"context"
	"strings"
	"time"

	"github.com/nikmy/timekeeper/pkg/errors"
)

type EventsRepo interface {
	// Create stores the event under a freshly generated id and returns it.
	Create(ctx context.Context, event UserEvent) (string, error)
	// Delete reports whether an event of the organization was removed.
	Delete(ctx context.Context, organizationID string, id string) (bool, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]UserEvent, error)
}

type EventType string

const (
	EventTypePersonal EventType = "PERSONAL"
	EventTypeCompany  EventType = "COMPANY"
)

func (t EventType) Valid() bool {
	return t == EventTypePersonal || t == EventTypeCompany
}

// UserEvent is a booked time range. The first attendee is the one it is
// charged to when counting daily hours.
type UserEvent struct {
	ID             string    `json:"id"             bson:"_id"`
	OrganizationID string    `json:"organizationId" bson:"organizationId"`
	Name           string    `json:"name"           bson:"name"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Start          time.Time `json:"start"          bson:"start"`
	End            time.Time `json:"end"            bson:"end"`
	Attendees      []string  `json:"attendees"      bson:"attendees"`
	Type           EventType `json:"type"           bson:"type"`
}

func (e UserEvent) Validate() error {
	var errs []error

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, errors.Error("name is empty"))
	}
	if e.Start.IsZero() || e.End.IsZero() {
		errs = append(errs, errors.Error("start and end are required"))
	} else if e.End.Before(e.Start) {
		errs = append(errs, errors.Error("end is before start"))
	}
	if len(e.Attendees) == 0 {
		errs = append(errs, errors.Error("no attendees"))
	}
	for _, a := range e.Attendees {
		if strings.TrimSpace(a) == "" {
			errs = append(errs, errors.Error("empty attendee id"))
			break
		}
	}
	if !e.Type.Valid() {
		errs = append(errs, errors.Errorf("unknown event type %q", e.Type))
	}

	return errors.Join(errs)
}

const (
	EventFieldID             = "_id"
	EventFieldOrganizationID = "organizationId"
	EventFieldName           = "name"
	EventFieldDescription    = "description"
	EventFieldStart          = "start"
	EventFieldEnd            = "end"
	EventFieldAttendees      = "attendees"
	EventFieldType           = "type"
)
