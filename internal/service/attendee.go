package service

import (
	"context"
	"fmt"

	"eventos/internal/api"
	"eventos/internal/model"
)

// Attendees wraps the /attendees endpoints.
type Attendees struct {
	client *api.Client
}

func NewAttendees(client *api.Client) *Attendees {
	return &Attendees{client: client}
}

// Register signs the current attendee up for an event.
func (s *Attendees) Register(ctx context.Context, eventID int64) (*model.RegistrationResponse, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("event id is required")
	}
	var resp model.RegistrationResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/attendees/register/%d", eventID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Unregister cancels the current attendee's registration.
func (s *Attendees) Unregister(ctx context.Context, eventID int64) error {
	if eventID <= 0 {
		return fmt.Errorf("event id is required")
	}
	return s.client.Delete(ctx, fmt.Sprintf("/attendees/unregister/%d", eventID))
}

// MyEvents returns the events the current attendee is registered for.
func (s *Attendees) MyEvents(ctx context.Context, params ListParams) (*model.EventPage, error) {
	var page model.EventPage
	if err := s.client.Get(ctx, "/attendees/my-events"+params.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CheckRegistration reports whether the current attendee is registered for
// the event.
func (s *Attendees) CheckRegistration(ctx context.Context, eventID int64) (bool, error) {
	if eventID <= 0 {
		return false, fmt.Errorf("event id is required")
	}
	var check model.RegistrationCheck
	if err := s.client.Get(ctx, fmt.Sprintf("/attendees/check/%d", eventID), &check); err != nil {
		return false, err
	}
	return check.IsRegistered, nil
}
