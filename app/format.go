package main

import (
	"fmt"

	"eventos/internal/model"
)

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDate renders a backend date as a readable day, e.g.
// "15 de marzo de 2024". Invalid input renders as empty.
func formatDate(s string) string {
	t, ok := model.ParseTime(s)
	if !ok {
		return ""
	}
	if state().locale == "es" {
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}

// formatDateTime renders a backend timestamp with its time of day, e.g.
// "15 de marzo de 2024, 14:30".
func formatDateTime(s string) string {
	t, ok := model.ParseTime(s)
	if !ok {
		return ""
	}
	if state().locale == "es" {
		return fmt.Sprintf("%d de %s de %d, %02d:%02d",
			t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	}
	return t.Format("January 2, 2006, 15:04")
}

// statusLabel resolves the localized label of a computed status, falling
// back to the raw value for anything unrecognized.
func statusLabel(status string) string {
	switch status {
	case model.StatusScheduled, model.StatusOngoing, model.StatusCompleted, model.StatusCancelled:
		return T("status." + status)
	default:
		return status
	}
}

// roleLabel resolves the localized label of a user role.
func roleLabel(role string) string {
	switch role {
	case model.RoleAdmin, model.RoleOrganizer, model.RoleAttendee:
		return T("role." + role)
	default:
		return T("role.unknown")
	}
}
