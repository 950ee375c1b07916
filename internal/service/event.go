package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"eventos/internal/api"
	"eventos/internal/model"
)

// ListParams are the optional pagination/filter parameters accepted by the
// list endpoints. Zero values are simply omitted from the query string.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

func (p ListParams) encode() string {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Events wraps the /events endpoints.
type Events struct {
	client *api.Client
}

func NewEvents(client *api.Client) *Events {
	return &Events{client: client}
}

// List returns a page of events matching the optional search/status filter.
func (s *Events) List(ctx context.Context, params ListParams) (*model.EventPage, error) {
	var page model.EventPage
	if err := s.client.Get(ctx, "/events"+params.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one event, with its sessions.
func (s *Events) Get(ctx context.Context, id int64) (*model.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("event id is required")
	}
	var event model.Event
	if err := s.client.Get(ctx, fmt.Sprintf("/events/%d", id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create creates a new event. Organizer role required by the backend.
func (s *Events) Create(ctx context.Context, data model.EventCreate) (*model.Event, error) {
	var event model.Event
	if err := s.client.Post(ctx, "/events", data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Update applies a partial update. Only fields present in the patch are
// sent; the decision table decides which ones may be.
func (s *Events) Update(ctx context.Context, id int64, patch model.EventUpdate) (*model.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("event id is required")
	}
	var event model.Event
	if err := s.client.Put(ctx, fmt.Sprintf("/events/%d", id), patch, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes an event.
func (s *Events) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("event id is required")
	}
	return s.client.Delete(ctx, fmt.Sprintf("/events/%d", id))
}

// Mine returns the events created by the current organizer.
func (s *Events) Mine(ctx context.Context, params ListParams) (*model.EventPage, error) {
	var page model.EventPage
	if err := s.client.Get(ctx, "/events/my/events"+params.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
