package service

import (
	"context"
	"fmt"

	"eventos/internal/api"
	"eventos/internal/model"
)

// Sessions wraps the /sessions endpoints.
type Sessions struct {
	client *api.Client
}

func NewSessions(client *api.Client) *Sessions {
	return &Sessions{client: client}
}

// ByEvent returns a page of the event's sessions.
func (s *Sessions) ByEvent(ctx context.Context, eventID int64, params ListParams) (*model.SessionPage, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("event id is required")
	}
	var page model.SessionPage
	if err := s.client.Get(ctx, fmt.Sprintf("/sessions/event/%d%s", eventID, params.encode()), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one session.
func (s *Sessions) Get(ctx context.Context, id int64) (*model.Session, error) {
	if id <= 0 {
		return nil, fmt.Errorf("session id is required")
	}
	var session model.Session
	if err := s.client.Get(ctx, fmt.Sprintf("/sessions/%d", id), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Create adds a session to an event. Organizer role required by the backend.
func (s *Sessions) Create(ctx context.Context, data model.SessionCreate) (*model.Session, error) {
	if data.EventID <= 0 {
		return nil, fmt.Errorf("event id is required")
	}
	var session model.Session
	if err := s.client.Post(ctx, "/sessions", data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Update applies a partial update to a session.
func (s *Sessions) Update(ctx context.Context, id int64, patch model.SessionUpdate) (*model.Session, error) {
	if id <= 0 {
		return nil, fmt.Errorf("session id is required")
	}
	var session model.Session
	if err := s.client.Put(ctx, fmt.Sprintf("/sessions/%d", id), patch, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session.
func (s *Sessions) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("session id is required")
	}
	return s.client.Delete(ctx, fmt.Sprintf("/sessions/%d", id))
}
