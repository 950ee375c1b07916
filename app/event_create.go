package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
	"eventos/internal/session"
)

// CreateEventView hosts the event form for organizers.
type CreateEventView struct {
	app.Compo

	saving bool
	errMsg string
}

func (v *CreateEventView) OnMount(ctx app.Context) {
	ensureSession(ctx, nil)
}

func (v *CreateEventView) onSubmit(ctx app.Context, data model.EventCreate) {
	v.saving = true
	v.errMsg = ""

	ctx.Async(func() {
		event, err := state().events.Create(context.Background(), data)
		ctx.Dispatch(func(ctx app.Context) {
			v.saving = false
			if err != nil {
				v.errMsg = errorText(err)
				return
			}
			ctx.Navigate(fmt.Sprintf("/events/%d", event.ID))
		})
	})
}

func (v *CreateEventView) Render() app.UI {
	s := state()

	if s.session.Status() == session.StatusUnknown {
		return withLayout(loadingIndicator())
	}
	if !s.session.IsAuthenticated() {
		return withLayout(loginPrompt(T("create.login_prompt")))
	}
	if !s.session.User().CanManageEvents() {
		return withLayout(permissionNotice(T("create.no_permission"), "/", T("detail.back_home")))
	}

	return withLayout(
		app.Div().Class("form-page").Body(
			&eventForm{
				Saving:   v.saving,
				ErrMsg:   v.errMsg,
				OnCreate: v.onSubmit,
				OnCancel: func(ctx app.Context) { ctx.Navigate("/") },
			},
		),
	)
}

// loginPrompt nudges an unauthenticated visitor towards the login page.
func loginPrompt(msg string) app.UI {
	return app.Div().Class("notice").Body(
		app.P().Text(msg),
		app.A().Href("/login").Body(
			app.Button().Class("btn btn-primary").Text(T("profile.go_login")),
		),
	)
}

// permissionNotice explains a missing role and offers a way back.
func permissionNotice(msg, backHref, backLabel string) app.UI {
	return app.Div().Class("notice").Body(
		app.P().Text(msg),
		app.A().Href(backHref).Body(
			app.Button().Class("btn btn-primary").Text(backLabel),
		),
	)
}
