package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventos/internal/api"
	"eventos/internal/model"
	"eventos/internal/storage"
)

func TestAttendeesRegister(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Registro exitoso",
			"data":    map[string]any{"event_id": 12, "registered_at": "2024-03-10T12:00:00"},
		})
	}))
	defer srv.Close()

	attendees := NewAttendees(api.New(srv.URL, storage.NewMemory()))
	resp, err := attendees.Register(context.Background(), 12)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v1/attendees/register/12" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if resp.Data.EventID != 12 {
		t.Errorf("event_id = %d", resp.Data.EventID)
	}
}

func TestAttendeesUnregister(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	attendees := NewAttendees(api.New(srv.URL, storage.NewMemory()))
	if err := attendees.Unregister(context.Background(), 12); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v1/attendees/unregister/12" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestAttendeesCheckRegistration(t *testing.T) {
	client, lastURL := newRecordingServer(t, model.RegistrationCheck{IsRegistered: true})

	registered, err := NewAttendees(client).CheckRegistration(context.Background(), 7)
	if err != nil {
		t.Fatalf("CheckRegistration: %v", err)
	}
	if !registered {
		t.Error("is_registered flag lost in decode")
	}
	if *lastURL != "/api/v1/attendees/check/7" {
		t.Errorf("request URL = %q", *lastURL)
	}
}

func TestAttendeesRequireEventID(t *testing.T) {
	client, _ := newRecordingServer(t, nil)
	attendees := NewAttendees(client)

	if _, err := attendees.Register(context.Background(), 0); err == nil {
		t.Error("Register(0) should fail")
	}
	if err := attendees.Unregister(context.Background(), 0); err == nil {
		t.Error("Unregister(0) should fail")
	}
	if _, err := attendees.CheckRegistration(context.Background(), 0); err == nil {
		t.Error("CheckRegistration(0) should fail")
	}
}
