package api

import (
	"time"

	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/errors"
)

type availabilityResponse struct {
	StartDateTime string              `json:"startDateTime"`
	EndDateTime   string              `json:"endDateTime"`
	Available     []availability.User `json:"available"`
	Unavailable   []availability.User `json:"unavailable"`
}

func newAvailabilityResponse(r *availability.Result) availabilityResponse {
	return availabilityResponse{
		StartDateTime: availability.FormatDateTime(r.Window.Start),
		EndDateTime:   availability.FormatDateTime(r.Window.End),
		Available:     r.Available,
		Unavailable:   r.Unavailable,
	}
}

type userRequest struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (r userRequest) model(organizationID string) models.User {
	return models.User{
		ID:             r.ID,
		OrganizationID: organizationID,
		DisplayName:    r.DisplayName,
		Email:          r.Email,
	}
}

type userResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

func newUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{ID: u.ID, DisplayName: u.DisplayName, Email: u.Email})
	}
	return out
}

type eventRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartDateTime string   `json:"startDateTime"`
	EndDateTime   string   `json:"endDateTime"`
	Attendees     []string `json:"attendees"`
	Type          string   `json:"type"`
}

func (r eventRequest) model(organizationID string) (models.UserEvent, error) {
	start, err := availability.ParseDateTime(r.StartDateTime)
	if err != nil {
		return models.UserEvent{}, errors.WrapFail(err, "parse startDateTime")
	}

	end, err := availability.ParseDateTime(r.EndDateTime)
	if err != nil {
		return models.UserEvent{}, errors.WrapFail(err, "parse endDateTime")
	}

	event := models.UserEvent{
		OrganizationID: organizationID,
		Name:           r.Name,
		Description:    r.Description,
		Start:          start,
		End:            end,
		Attendees:      r.Attendees,
		Type:           models.EventType(r.Type),
	}

	return event, event.Validate()
}

type eventResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	StartDateTime string   `json:"startDateTime"`
	EndDateTime   string   `json:"endDateTime"`
	Attendees     []string `json:"attendees"`
	Type          string   `json:"type"`
}

func newEventResponses(events []models.UserEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:            e.ID,
			Name:          e.Name,
			Description:   e.Description,
			StartDateTime: formatUTC(e.Start),
			EndDateTime:   formatUTC(e.End),
			Attendees:     e.Attendees,
			Type:          string(e.Type),
		})
	}
	return out
}

func formatUTC(t time.Time) string {
	return availability.FormatDateTime(t.UTC())
}
