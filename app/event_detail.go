package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
	"eventos/internal/session"
)

// eventIDFromPath extracts the event id from /events/{id} or
// /events/{id}/edit.
func eventIDFromPath(ctx app.Context) int64 {
	parts := strings.Split(strings.Trim(ctx.Page().URL().Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "events" {
		return 0
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// canRegisterFor reports whether the user may register for the event. The
// backend's is_full flag is authoritative: a full event never offers the
// register action, whatever the user's own registration state.
func canRegisterFor(user *model.User, event *model.Event) bool {
	return user.IsAttendee() && !event.IsFull
}

// canEditEvent reports whether the user may edit or delete the event.
// Completed events are read-only.
func canEditEvent(user *model.User, event *model.Event) bool {
	return user.CanManageEvents() && event.ComputedStatus != model.StatusCompleted
}

// EventDetailView shows one event with its sessions. Attendees can toggle
// their registration; organizers can edit, delete and manage sessions.
type EventDetailView struct {
	app.Compo

	eventID int64
	event   *model.Event
	loading bool
	errMsg  string

	isRegistered bool
	checking     bool
	registering  bool
	registerErr  string

	// Session management (organizers).
	editingSession *model.Session
	showSessionNew bool
	sessionSaving  bool
	sessionErr     string

	fetchSeq uint64
}

func (v *EventDetailView) OnMount(ctx app.Context) {
	ensureSession(ctx, func(ctx app.Context) {
		v.checkRegistration(ctx)
	})
	v.load(ctx)
}

func (v *EventDetailView) OnNav(ctx app.Context) {
	if id := eventIDFromPath(ctx); id != v.eventID {
		v.load(ctx)
	}
}

func (v *EventDetailView) load(ctx app.Context) {
	v.eventID = eventIDFromPath(ctx)
	v.loading = true
	v.errMsg = ""
	v.fetchSeq++
	seq := v.fetchSeq
	id := v.eventID

	ctx.Async(func() {
		event, err := state().events.Get(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if seq != v.fetchSeq {
				return
			}
			v.loading = false
			if err != nil {
				v.errMsg = errorText(err)
				return
			}
			v.event = event
			v.checkRegistration(ctx)
		})
	})
}

func (v *EventDetailView) checkRegistration(ctx app.Context) {
	user := state().session.User()
	if !user.IsAttendee() || v.event == nil || v.checking {
		return
	}
	v.checking = true
	id := v.eventID

	ctx.Async(func() {
		registered, err := state().attendees.CheckRegistration(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			v.checking = false
			if err != nil {
				app.Log("registration check failed:", err)
				return
			}
			v.isRegistered = registered
		})
	})
}

// onToggleRegistration registers or unregisters. The local flag flips only
// after the server confirmed, then the user snapshot is refreshed so the
// derived counts stay consistent.
func (v *EventDetailView) onToggleRegistration(ctx app.Context, e app.Event) {
	if !state().session.IsAuthenticated() {
		ctx.Navigate("/login")
		return
	}

	v.registering = true
	v.registerErr = ""
	id := v.eventID
	wasRegistered := v.isRegistered

	ctx.Async(func() {
		var err error
		if wasRegistered {
			err = state().attendees.Unregister(context.Background(), id)
		} else {
			_, err = state().attendees.Register(context.Background(), id)
		}
		if err == nil {
			if refreshErr := state().session.RefreshUser(context.Background()); refreshErr != nil {
				app.Log("user refresh failed:", refreshErr)
			}
		}
		ctx.Dispatch(func(ctx app.Context) {
			v.registering = false
			if err != nil {
				v.registerErr = errorText(err)
				return
			}
			v.isRegistered = !wasRegistered
			ctx.NewAction(sessionChangedAction)
		})
	})
}

func (v *EventDetailView) onDelete(ctx app.Context, e app.Event) {
	if !confirmDialog(T("detail.delete_confirm")) {
		return
	}
	id := v.eventID

	ctx.Async(func() {
		err := state().events.Delete(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.errMsg = errorText(err)
				return
			}
			ctx.Navigate("/")
		})
	})
}

func (v *EventDetailView) Render() app.UI {
	s := state()

	if v.loading || s.session.Status() == session.StatusUnknown {
		return withLayout(loadingIndicator())
	}
	if v.errMsg != "" {
		return withLayout(
			errorBanner(v.errMsg),
			app.A().Href("/").Body(app.Button().Class("btn").Text(T("detail.back_home"))),
		)
	}
	if v.event == nil {
		return withLayout(
			errorBanner(T("detail.not_found")),
			app.A().Href("/").Body(app.Button().Class("btn").Text(T("detail.back_home"))),
		)
	}

	event := v.event
	user := s.session.User()
	canEdit := canEditEvent(user, event)
	canRegister := canRegisterFor(user, event)

	return withLayout(
		app.Div().Class("detail").Body(
			app.A().Href("/").Body(app.Button().Class("btn").Text(T("detail.back"))),
			app.Div().Class("card").Body(
				app.Div().Class("detail-header").Body(
					app.H1().Text(event.Name),
					statusBadge(event.ComputedStatus),
				),
				app.If(event.Description != "", func() app.UI {
					return app.P().Class("detail-description").Text(event.Description)
				}),
				app.Div().Class("detail-info").Body(
					app.If(event.Location != "", func() app.UI {
						return infoRow(T("detail.location"), event.Location)
					}),
					infoRow(T("detail.start"), formatDateTime(event.StartDate)),
					infoRow(T("detail.end"), formatDateTime(event.EndDate)),
					v.renderCapacity(),
				),
				errorBanner(v.registerErr),
				app.Div().Class("detail-actions").Body(
					app.If(canRegister, func() app.UI {
						return v.renderRegisterButton()
					}),
					app.If(canEdit, func() app.UI {
						return app.A().Href(fmt.Sprintf("/events/%d/edit", event.ID)).Body(
							app.Button().Class("btn btn-success").Text(T("detail.edit")),
						)
					}),
					app.If(canEdit, func() app.UI {
						return app.Button().Class("btn btn-danger").
							Text(T("detail.delete")).
							OnClick(v.onDelete)
					}),
					app.If(user == nil, func() app.UI {
						return app.A().Href("/login").Body(
							app.Button().Class("btn btn-primary").Text(T("detail.login_to_register")),
						)
					}),
				),
			),
			v.renderSessions(user.CanManageEvents()),
		),
	)
}

func (v *EventDetailView) renderCapacity() app.UI {
	event := v.event
	if event.IsFull {
		return infoRow(T("detail.capacity"), T("detail.full", map[string]any{
			"Capacity": event.Capacity,
		}))
	}
	return infoRow(T("detail.capacity"), T("detail.available", map[string]any{
		"Available": event.AvailableCapacity,
		"Capacity":  event.Capacity,
	}))
}

func (v *EventDetailView) renderRegisterButton() app.UI {
	label := T("detail.register")
	if v.isRegistered {
		label = T("detail.unregister")
	}
	if v.registering {
		label = T("detail.processing")
	}
	return app.Button().Class("btn btn-primary").
		Disabled(v.registering || v.checking).
		Text(label).
		OnClick(v.onToggleRegistration)
}
