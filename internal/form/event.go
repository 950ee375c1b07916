// Package form contains the pure client-side form logic for events: the
// editable-fields decision table, field validation and the partial-update
// builder. All three consume the same capability record so the rendering
// and the submitted patch can never disagree about what is editable.
package form

import (
	"strconv"
	"strings"
	"time"

	"eventos/internal/model"
)

// InputTimeLayout is the value format of a datetime-local input.
const InputTimeLayout = "2006-01-02T15:04"

// EventFieldCaps records, per form field, whether it may currently be
// edited. The form renderer disables inputs from it and BuildEventPatch
// drops anything it marks non-editable.
type EventFieldCaps struct {
	Name        bool
	Description bool
	Location    bool
	StartDate   bool
	EndDate     bool
	Capacity    bool
	Status      bool
}

// Any reports whether at least one field is editable.
func (c EventFieldCaps) Any() bool {
	return c.Name || c.Description || c.Location || c.StartDate || c.EndDate || c.Capacity || c.Status
}

// EditableEventFields decides which fields of the event form may be edited
// given the event's backend-computed lifecycle status and its start date,
// evaluated against now.
func EditableEventFields(creating bool, computedStatus string, startDate, now time.Time) EventFieldCaps {
	if creating {
		// The server assigns the initial status.
		return EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true}
	}

	// A missing status means the backend has not computed one; treat the
	// event as scheduled so the date lock still applies once it starts.
	if computedStatus == "" {
		computedStatus = model.StatusScheduled
	}

	switch computedStatus {
	case model.StatusScheduled:
		// Dates may only move while the event has not begun.
		canEditDates := now.Before(startDate)
		return EventFieldCaps{
			Name:        true,
			Description: true,
			Location:    true,
			StartDate:   canEditDates,
			EndDate:     canEditDates,
			Capacity:    true,
			Status:      true,
		}
	case model.StatusOngoing:
		return EventFieldCaps{Description: true, Location: true}
	case model.StatusCompleted:
		return EventFieldCaps{}
	case model.StatusCancelled:
		// Only the status, to reactivate the event.
		return EventFieldCaps{Status: true}
	default:
		// Unrecognized status: fail open, everything editable.
		return EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true, Status: true}
	}
}

// EventValues holds the raw form input values, all as strings, the way the
// inputs produce them. Dates use InputTimeLayout.
type EventValues struct {
	Name        string
	Description string
	Location    string
	StartDate   string
	EndDate     string
	Capacity    string
	Status      string
}

// ValuesFromEvent pre-fills the form from an existing event.
func ValuesFromEvent(event *model.Event) EventValues {
	values := EventValues{Status: model.StatusScheduled}
	if event == nil {
		return values
	}
	values.Name = event.Name
	values.Description = event.Description
	values.Location = event.Location
	values.Capacity = strconv.Itoa(event.Capacity)
	if event.Status != "" {
		values.Status = event.Status
	}
	if t, ok := model.ParseTime(event.StartDate); ok {
		values.StartDate = t.Format(InputTimeLayout)
	}
	if t, ok := model.ParseTime(event.EndDate); ok {
		values.EndDate = t.Format(InputTimeLayout)
	}
	return values
}

// Validation message IDs, resolved through the i18n catalog at the view
// layer.
const (
	MsgNameRequired     = "form.name_required"
	MsgStartRequired    = "form.start_required"
	MsgEndRequired      = "form.end_required"
	MsgEndAfterStart    = "form.end_after_start"
	MsgCapacityPositive = "form.capacity_positive"
)

// ValidateEvent checks the editable fields only. It returns a field →
// message-ID map; an empty map means the form may be submitted. Validation
// failures never reach the network layer.
func ValidateEvent(caps EventFieldCaps, values EventValues) map[string]string {
	errs := make(map[string]string)

	if caps.Name && strings.TrimSpace(values.Name) == "" {
		errs["name"] = MsgNameRequired
	}
	if caps.StartDate && values.StartDate == "" {
		errs["start_date"] = MsgStartRequired
	}
	if caps.EndDate && values.EndDate == "" {
		errs["end_date"] = MsgEndRequired
	}
	if caps.StartDate && caps.EndDate && values.StartDate != "" && values.EndDate != "" {
		start, okStart := model.ParseTime(values.StartDate)
		end, okEnd := model.ParseTime(values.EndDate)
		if okStart && okEnd && !end.After(start) {
			errs["end_date"] = MsgEndAfterStart
		}
	}
	if caps.Capacity {
		n, err := strconv.Atoi(strings.TrimSpace(values.Capacity))
		if err != nil || n <= 0 {
			errs["capacity"] = MsgCapacityPositive
		}
	}

	return errs
}

// BuildEventPatch assembles the PUT payload from the form values. Only
// fields the caps mark editable are included, string fields are trimmed and
// blank optional strings become an explicit null. The status is included
// only when it differs from the event's persisted status.
func BuildEventPatch(caps EventFieldCaps, values EventValues, event *model.Event) model.EventUpdate {
	var patch model.EventUpdate

	if caps.Name {
		name := strings.TrimSpace(values.Name)
		patch.Name = &name
	}
	if caps.Description {
		patch.Description = optionalString(values.Description)
	}
	if caps.Location {
		patch.Location = optionalString(values.Location)
	}
	if caps.StartDate {
		if t, ok := model.ParseTime(values.StartDate); ok {
			s := t.Format(time.RFC3339)
			patch.StartDate = &s
		}
	}
	if caps.EndDate {
		if t, ok := model.ParseTime(values.EndDate); ok {
			s := t.Format(time.RFC3339)
			patch.EndDate = &s
		}
	}
	if caps.Capacity {
		if n, err := strconv.Atoi(strings.TrimSpace(values.Capacity)); err == nil {
			patch.Capacity = &n
		}
	}
	if caps.Status && event != nil && values.Status != event.Status {
		status := values.Status
		patch.Status = &status
	}

	return patch
}

// BuildEventCreate assembles the POST payload for a new event. Call only
// after ValidateEvent returned no errors.
func BuildEventCreate(values EventValues) model.EventCreate {
	data := model.EventCreate{
		Name:        strings.TrimSpace(values.Name),
		Description: optionalString(values.Description),
		Location:    optionalString(values.Location),
	}
	if t, ok := model.ParseTime(values.StartDate); ok {
		data.StartDate = t.Format(time.RFC3339)
	}
	if t, ok := model.ParseTime(values.EndDate); ok {
		data.EndDate = t.Format(time.RFC3339)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(values.Capacity)); err == nil {
		data.Capacity = n
	}
	return data
}

// optionalString trims s and maps blank to nil so the backend receives an
// explicit absent value instead of an empty string.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
