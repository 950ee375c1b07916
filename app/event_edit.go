package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
	"eventos/internal/session"
)

// EditEventView loads the event and hosts the form with the editability
// rules applied.
type EditEventView struct {
	app.Compo

	eventID int64
	event   *model.Event
	loading bool
	errMsg  string

	saving  bool
	saveErr string

	fetchSeq uint64
}

func (v *EditEventView) OnMount(ctx app.Context) {
	ensureSession(ctx, nil)
	v.load(ctx)
}

func (v *EditEventView) OnNav(ctx app.Context) {
	if id := eventIDFromPath(ctx); id != v.eventID {
		v.load(ctx)
	}
}

func (v *EditEventView) load(ctx app.Context) {
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
		})
	})
}

func (v *EditEventView) onSubmit(ctx app.Context, patch model.EventUpdate) {
	v.saving = true
	v.saveErr = ""
	id := v.eventID

	ctx.Async(func() {
		event, err := state().events.Update(context.Background(), id, patch)
		ctx.Dispatch(func(ctx app.Context) {
			v.saving = false
			if err != nil {
				v.saveErr = errorText(err)
				return
			}
			ctx.Navigate(fmt.Sprintf("/events/%d", event.ID))
		})
	})
}

func (v *EditEventView) Render() app.UI {
	s := state()

	if v.loading || s.session.Status() == session.StatusUnknown {
		return withLayout(loadingIndicator())
	}
	if !s.session.IsAuthenticated() {
		return withLayout(loginPrompt(T("edit.login_prompt")))
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
	if !s.session.User().CanManageEvents() {
		backHref := fmt.Sprintf("/events/%d", v.eventID)
		return withLayout(permissionNotice(T("edit.no_permission"), backHref, T("edit.back_event")))
	}

	return withLayout(
		app.Div().Class("form-page").Body(
			&eventForm{
				Event:    v.event,
				Saving:   v.saving,
				ErrMsg:   v.saveErr,
				OnUpdate: v.onSubmit,
				OnCancel: func(ctx app.Context) {
					ctx.Navigate(fmt.Sprintf("/events/%d", v.eventID))
				},
			},
		),
	)
}
