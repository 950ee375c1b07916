// Package model defines the transport DTOs exchanged with the events
// backend. The client never owns these beyond a page's display lifetime;
// derived fields (computed_status, available_capacity, is_full) are
// backend-authoritative and never recomputed here.
package model

import "time"

// User roles assigned by the backend. The client only reads them.
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleAttendee  = "attendee"
)

// Persisted event statuses an organizer may set.
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)

// Computed statuses derived by the backend from wall-clock time.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// User is the /auth/me profile. registered_events and created_events_count
// are only populated for the matching role.
type User struct {
	ID                 int64   `json:"id"`
	Email              string  `json:"email"`
	FullName           string  `json:"full_name,omitempty"`
	Role               string  `json:"role"`
	IsActive           bool    `json:"is_active"`
	CreatedAt          string  `json:"created_at"`
	CreatedEventsCount int     `json:"created_events_count,omitempty"`
	RegisteredEvents   []Event `json:"registered_events,omitempty"`
}

// CanManageEvents reports whether the user may create, edit or delete
// events and sessions.
func (u *User) CanManageEvents() bool {
	return u != nil && (u.Role == RoleOrganizer || u.Role == RoleAdmin)
}

// IsAttendee reports whether the user may register for events.
func (u *User) IsAttendee() bool {
	return u != nil && u.Role == RoleAttendee
}

// Event as returned by the backend. Dates are kept as the backend's wire
// strings; use ParseTime to interpret them.
type Event struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Location          string    `json:"location,omitempty"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Capacity          int       `json:"capacity"`
	Status            string    `json:"status,omitempty"`
	ComputedStatus    string    `json:"computed_status"`
	CreatorID         int64     `json:"creator_id"`
	CreatedAt         string    `json:"created_at"`
	AvailableCapacity int       `json:"available_capacity"`
	IsFull            bool      `json:"is_full"`
	Sessions          []Session `json:"sessions,omitempty"`
}

// Session belongs to an event; it has no lifecycle of its own in this
// client outside the event detail view.
type Session struct {
	ID          int64  `json:"id"`
	EventID     int64  `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SpeakerName string `json:"speaker_name,omitempty"`
	SpeakerBio  string `json:"speaker_bio,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// Pagination accompanies every list response.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// EventPage is the envelope of /events, /events/my/events and
// /attendees/my-events.
type EventPage struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}

// SessionPage is the envelope of /sessions/event/{id}.
type SessionPage struct {
	Sessions   []Session  `json:"sessions"`
	Pagination Pagination `json:"pagination"`
}

// TokenResponse is the /auth/login body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegistrationResponse is the /attendees/register/{id} body.
type RegistrationResponse struct {
	Message string `json:"message"`
	Data    struct {
		EventID      int64  `json:"event_id"`
		RegisteredAt string `json:"registered_at"`
	} `json:"data"`
}

// RegistrationCheck is the /attendees/check/{id} body.
type RegistrationCheck struct {
	IsRegistered bool `json:"is_registered"`
}

// EventCreate is the POST /events payload. Optional strings marshal to an
// explicit null so the backend clears them rather than ignoring them.
type EventCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Capacity    int     `json:"capacity"`
}

// EventUpdate is the PUT /events/{id} payload. Every field is optional;
// only fields the editability rules allow are ever set.
type EventUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (u EventUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Location == nil &&
		u.StartDate == nil && u.EndDate == nil && u.Capacity == nil && u.Status == nil
}

// SessionCreate is the POST /sessions payload.
type SessionCreate struct {
	EventID     int64   `json:"event_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	SpeakerName *string `json:"speaker_name"`
	SpeakerBio  *string `json:"speaker_bio"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
}

// SessionUpdate is the PUT /sessions/{id} payload.
type SessionUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SpeakerName *string `json:"speaker_name,omitempty"`
	SpeakerBio  *string `json:"speaker_bio,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}

// Wire formats the backend emits. FastAPI-style backends omit the timezone
// suffix, so RFC 3339 alone is not enough.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime interprets a backend date string. The zero time and false are
// returned for blank or unparseable input.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
