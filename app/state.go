package main

import (
	"context"
	"errors"
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/api"
	"eventos/internal/i18n"
	"eventos/internal/service"
	"eventos/internal/session"
)

// sessionChangedAction is broadcast whenever the auth session transitions,
// so every mounted view re-renders with the new state.
const sessionChangedAction = "eventos/session-changed"

// ui bundles the process-lifetime singletons: translator, API client,
// domain services and the session manager. Built lazily on first use so
// app.Getenv is already populated by the handler Env map.
var (
	ui     *appState
	uiOnce sync.Once
)

type appState struct {
	t         *i18n.Translator
	locale    string
	events    *service.Events
	sessions  *service.Sessions
	attendees *service.Attendees
	session   *session.Manager

	initStarted bool
}

func state() *appState {
	uiOnce.Do(func() {
		locale := app.Getenv("EVENTOS_LOCALE")
		if locale == "" {
			locale = "es"
		}
		store := newLocalStore()
		client := api.New(app.Getenv("EVENTOS_API_URL"), store)
		ui = &appState{
			t:         i18n.NewTranslator(locale),
			locale:    locale,
			events:    service.NewEvents(client),
			sessions:  service.NewSessions(client),
			attendees: service.NewAttendees(client),
			session:   session.NewManager(service.NewAuth(client), store),
		}
	})
	return ui
}

// T renders a catalog message.
func T(key string, data ...map[string]any) string {
	return state().t.T(key, data...)
}

// ensureSession kicks off the one-time durable token check and subscribes
// the calling component to session transitions. Every page calls it from
// OnMount; onChange (optional) runs on the UI goroutine after every
// transition, before the re-render.
func ensureSession(ctx app.Context, onChange func(app.Context)) {
	s := state()
	ctx.Handle(sessionChangedAction, func(ctx app.Context, _ app.Action) {
		ctx.Dispatch(func(ctx app.Context) {
			if onChange != nil {
				onChange(ctx)
			}
		})
	})
	if s.initStarted {
		return
	}
	s.initStarted = true
	ctx.Async(func() {
		s.session.Init(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			ctx.NewAction(sessionChangedAction)
		})
	})
}

// errorText turns a service error into the message shown to the user,
// preferring the backend's own detail text.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		if netErr.CORS {
			return T("error.cors")
		}
		return T("error.network")
	}
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.Detail != "" {
		return httpErr.Detail
	}
	return T("error.generic")
}
