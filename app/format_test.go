package main

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15T14:30:00", "15 de marzo de 2024"},
		{"2024-12-01", "1 de diciembre de 2024"},
		{"", ""},
		{"garbage", ""},
	}
	for _, tt := range tests {
		if got := formatDate(tt.in); got != tt.want {
			t.Errorf("formatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := formatDateTime("2024-03-15T14:30:00"); got != "15 de marzo de 2024, 14:30" {
		t.Errorf("formatDateTime = %q", got)
	}
	if got := formatDateTime("2024-03-15T09:05:00"); got != "15 de marzo de 2024, 09:05" {
		t.Errorf("formatDateTime = %q", got)
	}
}

func TestStatusLabelFallsBackToRawValue(t *testing.T) {
	if got := statusLabel("archived"); got != "archived" {
		t.Errorf("statusLabel(archived) = %q", got)
	}
}
