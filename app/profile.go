package main

import (
	"context"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
	"eventos/internal/service"
	"eventos/internal/session"
)

// ProfileView shows the current user plus their created events (organizer)
// or registered events (attendee).
type ProfileView struct {
	app.Compo

	createdEvents     []model.Event
	createdPagination *model.Pagination
	createdLoading    bool
	createdErr        string
	createdPage       int
	createdSeq        uint64

	registeredEvents     []model.Event
	registeredPagination *model.Pagination
	registeredLoading    bool
	registeredErr        string
	registeredPage       int
	registeredSeq        uint64

	fetched bool
}

func (v *ProfileView) OnInit() {
	v.createdPage = 1
	v.registeredPage = 1
}

func (v *ProfileView) OnMount(ctx app.Context) {
	ensureSession(ctx, v.maybeFetch)
	v.maybeFetch(ctx)
}

func (v *ProfileView) maybeFetch(ctx app.Context) {
	user := state().session.User()
	if user == nil {
		v.fetched = false
		return
	}
	if v.fetched {
		return
	}
	v.fetched = true
	if user.CanManageEvents() {
		v.fetchCreated(ctx)
	}
	if user.IsAttendee() {
		v.fetchRegistered(ctx)
	}
}

func (v *ProfileView) fetchCreated(ctx app.Context) {
	v.createdLoading = true
	v.createdErr = ""
	v.createdSeq++
	seq := v.createdSeq
	params := service.ListParams{Page: v.createdPage, PerPage: defaultPageSize}

	ctx.Async(func() {
		page, err := state().events.Mine(context.Background(), params)
		ctx.Dispatch(func(ctx app.Context) {
			if seq != v.createdSeq {
				return
			}
			v.createdLoading = false
			if err != nil {
				v.createdErr = errorText(err)
				return
			}
			v.createdEvents = page.Events
			v.createdPagination = &page.Pagination
		})
	})
}

func (v *ProfileView) fetchRegistered(ctx app.Context) {
	v.registeredLoading = true
	v.registeredErr = ""
	v.registeredSeq++
	seq := v.registeredSeq
	params := service.ListParams{Page: v.registeredPage, PerPage: defaultPageSize}

	ctx.Async(func() {
		page, err := state().attendees.MyEvents(context.Background(), params)
		ctx.Dispatch(func(ctx app.Context) {
			if seq != v.registeredSeq {
				return
			}
			v.registeredLoading = false
			if err != nil {
				v.registeredErr = errorText(err)
				return
			}
			v.registeredEvents = page.Events
			v.registeredPagination = &page.Pagination
		})
	})
}

func (v *ProfileView) onLogout(ctx app.Context, e app.Event) {
	state().session.Logout()
	ctx.NewAction(sessionChangedAction)
	ctx.Navigate("/")
}

func (v *ProfileView) Render() app.UI {
	s := state()

	if s.session.Status() == session.StatusUnknown {
		return withLayout(loadingIndicator())
	}

	user := s.session.User()
	if user == nil {
		return withLayout(loginPrompt(T("profile.login_prompt")))
	}

	return withLayout(
		app.Div().Class("profile").Body(
			app.Div().Class("card profile-header").Body(
				app.Div().Class("profile-info").Body(
					app.H1().Text(T("profile.title")),
					infoRow(T("profile.email"), user.Email),
					app.If(user.FullName != "", func() app.UI {
						return infoRow(T("profile.name"), user.FullName)
					}),
					infoRow(T("profile.role"), roleLabel(user.Role)),
					app.If(user.CanManageEvents(), func() app.UI {
						return infoRow(T("profile.created_count"), strconv.Itoa(user.CreatedEventsCount))
					}),
				),
				app.Div().Class("profile-actions").Body(
					app.If(user.CanManageEvents(), func() app.UI {
						return app.A().Href("/events/create").Body(
							app.Button().Class("btn btn-primary").Text(T("home.create_event")),
						)
					}),
					app.Button().Class("btn btn-danger").
						Text(T("nav.logout")).
						OnClick(v.onLogout),
				),
			),
			app.If(user.CanManageEvents(), func() app.UI {
				return app.Div().Class("profile-section").Body(
					app.H2().Text(T("profile.created_section")),
					renderEventList(v.createdEvents, v.createdPagination, v.createdLoading, v.createdErr,
						func(ctx app.Context, page int) {
							v.createdPage = page
							v.fetchCreated(ctx)
						}),
				)
			}),
			app.If(user.IsAttendee(), func() app.UI {
				return app.Div().Class("profile-section").Body(
					app.H2().Text(T("profile.registered_section")),
					renderEventList(v.registeredEvents, v.registeredPagination, v.registeredLoading, v.registeredErr,
						func(ctx app.Context, page int) {
							v.registeredPage = page
							v.fetchRegistered(ctx)
						}),
				)
			}),
		),
	)
}
