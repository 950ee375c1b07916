package form

import (
	"testing"
	"time"

	"eventos/internal/model"
)

func TestEditableEventFields(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	before := now.Add(24 * time.Hour)
	after := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		creating  bool
		status    string
		startDate time.Time
		want      EventFieldCaps
	}{
		{
			name:      "creating allows everything but status",
			creating:  true,
			startDate: before,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true},
		},
		{
			name:      "scheduled before start allows everything",
			status:    model.StatusScheduled,
			startDate: before,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true, Status: true},
		},
		{
			name:      "scheduled after start locks the dates",
			status:    model.StatusScheduled,
			startDate: after,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, Capacity: true, Status: true},
		},
		{
			name:      "scheduled at exactly the start locks the dates",
			status:    model.StatusScheduled,
			startDate: now,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, Capacity: true, Status: true},
		},
		{
			name:      "ongoing allows only description and location",
			status:    model.StatusOngoing,
			startDate: after,
			want:      EventFieldCaps{Description: true, Location: true},
		},
		{
			name:      "completed allows nothing",
			status:    model.StatusCompleted,
			startDate: after,
			want:      EventFieldCaps{},
		},
		{
			name:      "cancelled allows only the status",
			status:    model.StatusCancelled,
			startDate: before,
			want:      EventFieldCaps{Status: true},
		},
		{
			name:      "blank status treated as scheduled before start",
			status:    "",
			startDate: before,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true, Status: true},
		},
		{
			name:      "blank status treated as scheduled locks dates after start",
			status:    "",
			startDate: after,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, Capacity: true, Status: true},
		},
		{
			name:      "unknown status fails open",
			status:    "archived",
			startDate: after,
			want:      EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true, Status: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditableEventFields(tt.creating, tt.status, tt.startDate, now)
			if got != tt.want {
				t.Errorf("EditableEventFields() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEventFieldCapsAny(t *testing.T) {
	if (EventFieldCaps{}).Any() {
		t.Error("empty caps should report Any() == false")
	}
	if !(EventFieldCaps{Location: true}).Any() {
		t.Error("caps with one editable field should report Any() == true")
	}
}

func TestValidateEvent(t *testing.T) {
	allCaps := EventFieldCaps{Name: true, Description: true, Location: true, StartDate: true, EndDate: true, Capacity: true, Status: true}

	valid := EventValues{
		Name:      "Conferencia Go",
		StartDate: "2024-06-01T09:00",
		EndDate:   "2024-06-01T18:00",
		Capacity:  "100",
	}
	if errs := ValidateEvent(allCaps, valid); len(errs) != 0 {
		t.Fatalf("valid values produced errors: %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*EventValues)
		field  string
		msgID  string
	}{
		{"blank name", func(v *EventValues) { v.Name = "   " }, "name", MsgNameRequired},
		{"missing start date", func(v *EventValues) { v.StartDate = "" }, "start_date", MsgStartRequired},
		{"missing end date", func(v *EventValues) { v.EndDate = "" }, "end_date", MsgEndRequired},
		{"end before start", func(v *EventValues) { v.EndDate = "2024-06-01T08:00" }, "end_date", MsgEndAfterStart},
		{"end equal to start", func(v *EventValues) { v.EndDate = v.StartDate }, "end_date", MsgEndAfterStart},
		{"zero capacity", func(v *EventValues) { v.Capacity = "0" }, "capacity", MsgCapacityPositive},
		{"negative capacity", func(v *EventValues) { v.Capacity = "-5" }, "capacity", MsgCapacityPositive},
		{"non-numeric capacity", func(v *EventValues) { v.Capacity = "many" }, "capacity", MsgCapacityPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := valid
			tt.mutate(&values)
			errs := ValidateEvent(allCaps, values)
			if got := errs[tt.field]; got != tt.msgID {
				t.Errorf("errs[%q] = %q, want %q (all errs: %v)", tt.field, got, tt.msgID, errs)
			}
		})
	}
}

func TestValidateEventSkipsLockedFields(t *testing.T) {
	// Ongoing events only expose description and location, so blank
	// required fields elsewhere must not block the submit.
	caps := EventFieldCaps{Description: true, Location: true}
	values := EventValues{Description: "updated"}
	if errs := ValidateEvent(caps, values); len(errs) != 0 {
		t.Errorf("locked fields were validated: %v", errs)
	}
}

func TestBuildEventPatchRespectsCaps(t *testing.T) {
	event := &model.Event{
		ID:        7,
		Name:      "Taller",
		Status:    model.StatusOngoing,
		StartDate: "2024-03-01T09:00:00",
		EndDate:   "2024-03-01T17:00:00",
		Capacity:  50,
	}
	caps := EventFieldCaps{Description: true, Location: true}
	values := EventValues{
		Name:        "Renamed",
		Description: "  new description  ",
		Location:    "Sala B",
		StartDate:   "2024-04-01T09:00",
		EndDate:     "2024-04-01T17:00",
		Capacity:    "200",
		Status:      model.StatusCancelled,
	}

	patch := BuildEventPatch(caps, values, event)

	if patch.Name != nil {
		t.Errorf("Name included despite being locked: %q", *patch.Name)
	}
	if patch.StartDate != nil || patch.EndDate != nil {
		t.Error("dates included despite being locked")
	}
	if patch.Capacity != nil {
		t.Error("capacity included despite being locked")
	}
	if patch.Status != nil {
		t.Error("status included despite being locked")
	}
	if patch.Description == nil || *patch.Description != "new description" {
		t.Errorf("Description = %v, want trimmed \"new description\"", patch.Description)
	}
	if patch.Location == nil || *patch.Location != "Sala B" {
		t.Errorf("Location = %v, want \"Sala B\"", patch.Location)
	}
}

func TestBuildEventPatchBlankOptionalBecomesNull(t *testing.T) {
	event := &model.Event{Status: model.StatusScheduled}
	caps := EventFieldCaps{Description: true, Location: true}
	patch := BuildEventPatch(caps, EventValues{Description: "   ", Location: ""}, event)

	if patch.Description != nil {
		t.Errorf("blank description should map to nil, got %q", *patch.Description)
	}
	if patch.Location != nil {
		t.Errorf("blank location should map to nil, got %q", *patch.Location)
	}
}

func TestBuildEventPatchStatusOnlyWhenChanged(t *testing.T) {
	event := &model.Event{Status: model.StatusScheduled}
	caps := EventFieldCaps{Status: true}

	same := BuildEventPatch(caps, EventValues{Status: model.StatusScheduled}, event)
	if same.Status != nil {
		t.Errorf("unchanged status should be omitted, got %q", *same.Status)
	}
	if !same.IsEmpty() {
		t.Error("patch with no changes should be empty")
	}

	changed := BuildEventPatch(caps, EventValues{Status: model.StatusCancelled}, event)
	if changed.Status == nil || *changed.Status != model.StatusCancelled {
		t.Errorf("changed status missing from patch: %v", changed.Status)
	}
}

func TestBuildEventPatchFormatsDates(t *testing.T) {
	event := &model.Event{Status: model.StatusScheduled}
	caps := EventFieldCaps{StartDate: true, EndDate: true}
	patch := BuildEventPatch(caps, EventValues{StartDate: "2024-06-01T09:00", EndDate: "2024-06-01T18:00"}, event)

	if patch.StartDate == nil || *patch.StartDate != "2024-06-01T09:00:00Z" {
		t.Errorf("StartDate = %v, want RFC 3339", patch.StartDate)
	}
	if patch.EndDate == nil || *patch.EndDate != "2024-06-01T18:00:00Z" {
		t.Errorf("EndDate = %v, want RFC 3339", patch.EndDate)
	}
}

func TestBuildEventCreate(t *testing.T) {
	values := EventValues{
		Name:        "  Conferencia  ",
		Description: "",
		Location:    "Madrid",
		StartDate:   "2024-06-01T09:00",
		EndDate:     "2024-06-02T18:00",
		Capacity:    "150",
	}

	data := BuildEventCreate(values)

	if data.Name != "Conferencia" {
		t.Errorf("Name = %q, want trimmed", data.Name)
	}
	if data.Description != nil {
		t.Error("blank description should be nil")
	}
	if data.Location == nil || *data.Location != "Madrid" {
		t.Errorf("Location = %v", data.Location)
	}
	if data.StartDate != "2024-06-01T09:00:00Z" {
		t.Errorf("StartDate = %q", data.StartDate)
	}
	if data.Capacity != 150 {
		t.Errorf("Capacity = %d", data.Capacity)
	}
}

func TestValuesFromEvent(t *testing.T) {
	got := ValuesFromEvent(&model.Event{
		Name:      "Meetup",
		Location:  "Online",
		StartDate: "2024-05-20T10:30:00",
		EndDate:   "2024-05-20T12:00:00",
		Capacity:  30,
		Status:    model.StatusOngoing,
	})

	want := EventValues{
		Name:      "Meetup",
		Location:  "Online",
		StartDate: "2024-05-20T10:30",
		EndDate:   "2024-05-20T12:00",
		Capacity:  "30",
		Status:    model.StatusOngoing,
	}
	if got != want {
		t.Errorf("ValuesFromEvent() = %+v, want %+v", got, want)
	}

	if v := ValuesFromEvent(nil); v.Status != model.StatusScheduled {
		t.Errorf("nil event should default status to scheduled, got %q", v.Status)
	}
}
