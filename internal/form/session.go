package form

import (
	"strconv"
	"strings"
	"time"

	"eventos/internal/model"
)

// Session validation message IDs.
const (
	MsgTitleRequired = "form.title_required"
)

// SessionValues holds the raw session form inputs.
type SessionValues struct {
	Title       string
	Description string
	SpeakerName string
	SpeakerBio  string
	StartTime   string
	EndTime     string
	Location    string
	Capacity    string
}

// ValuesFromSession pre-fills the form from an existing session.
func ValuesFromSession(session *model.Session) SessionValues {
	var values SessionValues
	if session == nil {
		return values
	}
	values.Title = session.Title
	values.Description = session.Description
	values.SpeakerName = session.SpeakerName
	values.SpeakerBio = session.SpeakerBio
	values.Location = session.Location
	if session.Capacity != nil {
		values.Capacity = strconv.Itoa(*session.Capacity)
	}
	if t, ok := model.ParseTime(session.StartTime); ok {
		values.StartTime = t.Format(InputTimeLayout)
	}
	if t, ok := model.ParseTime(session.EndTime); ok {
		values.EndTime = t.Format(InputTimeLayout)
	}
	return values
}

// ValidateSession checks the session form. Same contract as ValidateEvent:
// empty map means submit is allowed.
func ValidateSession(values SessionValues) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(values.Title) == "" {
		errs["title"] = MsgTitleRequired
	}
	if values.StartTime == "" {
		errs["start_time"] = MsgStartRequired
	}
	if values.EndTime == "" {
		errs["end_time"] = MsgEndRequired
	}
	if values.StartTime != "" && values.EndTime != "" {
		start, okStart := model.ParseTime(values.StartTime)
		end, okEnd := model.ParseTime(values.EndTime)
		if okStart && okEnd && !end.After(start) {
			errs["end_time"] = MsgEndAfterStart
		}
	}
	if strings.TrimSpace(values.Capacity) != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(values.Capacity)); err != nil || n <= 0 {
			errs["capacity"] = MsgCapacityPositive
		}
	}

	return errs
}

// BuildSessionCreate assembles the POST /sessions payload.
func BuildSessionCreate(eventID int64, values SessionValues) model.SessionCreate {
	data := model.SessionCreate{
		EventID:     eventID,
		Title:       strings.TrimSpace(values.Title),
		Description: optionalString(values.Description),
		SpeakerName: optionalString(values.SpeakerName),
		SpeakerBio:  optionalString(values.SpeakerBio),
		Location:    optionalString(values.Location),
		Capacity:    optionalInt(values.Capacity),
	}
	if t, ok := model.ParseTime(values.StartTime); ok {
		data.StartTime = t.Format(time.RFC3339)
	}
	if t, ok := model.ParseTime(values.EndTime); ok {
		data.EndTime = t.Format(time.RFC3339)
	}
	return data
}

// BuildSessionPatch assembles the PUT /sessions/{id} payload. Session
// fields have no lifecycle-based editability rules, so every field is sent.
func BuildSessionPatch(values SessionValues) model.SessionUpdate {
	var patch model.SessionUpdate

	title := strings.TrimSpace(values.Title)
	patch.Title = &title
	patch.Description = optionalString(values.Description)
	patch.SpeakerName = optionalString(values.SpeakerName)
	patch.SpeakerBio = optionalString(values.SpeakerBio)
	patch.Location = optionalString(values.Location)
	patch.Capacity = optionalInt(values.Capacity)
	if t, ok := model.ParseTime(values.StartTime); ok {
		s := t.Format(time.RFC3339)
		patch.StartTime = &s
	}
	if t, ok := model.ParseTime(values.EndTime); ok {
		s := t.Format(time.RFC3339)
		patch.EndTime = &s
	}
	return patch
}

func optionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
