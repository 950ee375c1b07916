package main

import (
	"testing"

	"eventos/internal/model"
)

func TestCanRegisterFor(t *testing.T) {
	tests := []struct {
		name  string
		user  *model.User
		event *model.Event
		want  bool
	}{
		{
			name:  "attendee with free capacity",
			user:  &model.User{Role: model.RoleAttendee},
			event: &model.Event{AvailableCapacity: 3},
			want:  true,
		},
		{
			name:  "full event never offers registration",
			user:  &model.User{Role: model.RoleAttendee},
			event: &model.Event{IsFull: true},
			want:  false,
		},
		{
			name: "full event stays closed even for a registered attendee",
			user: &model.User{
				Role:             model.RoleAttendee,
				RegisteredEvents: []model.Event{{ID: 9}},
			},
			event: &model.Event{ID: 9, IsFull: true},
			want:  false,
		},
		{
			name:  "organizer cannot register",
			user:  &model.User{Role: model.RoleOrganizer},
			event: &model.Event{AvailableCapacity: 3},
			want:  false,
		},
		{
			name:  "admin cannot register",
			user:  &model.User{Role: model.RoleAdmin},
			event: &model.Event{AvailableCapacity: 3},
			want:  false,
		},
		{
			name:  "anonymous visitor cannot register",
			user:  nil,
			event: &model.Event{AvailableCapacity: 3},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRegisterFor(tt.user, tt.event); got != tt.want {
				t.Errorf("canRegisterFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEditEvent(t *testing.T) {
	organizer := &model.User{Role: model.RoleOrganizer}

	if !canEditEvent(organizer, &model.Event{ComputedStatus: model.StatusScheduled}) {
		t.Error("organizer should edit a scheduled event")
	}
	if canEditEvent(organizer, &model.Event{ComputedStatus: model.StatusCompleted}) {
		t.Error("completed events are read-only")
	}
	if canEditEvent(&model.User{Role: model.RoleAttendee}, &model.Event{ComputedStatus: model.StatusScheduled}) {
		t.Error("attendee must not edit events")
	}
	if canEditEvent(nil, &model.Event{ComputedStatus: model.StatusScheduled}) {
		t.Error("anonymous visitor must not edit events")
	}
}
