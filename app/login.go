package main

import (
	"context"
	"regexp"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// LoginView authenticates an existing user.
type LoginView struct {
	app.Compo

	email    string
	password string

	fieldErrs  map[string]string
	errMsg     string
	submitting bool
}

func (v *LoginView) OnInit() {
	v.fieldErrs = map[string]string{}
}

func (v *LoginView) OnMount(ctx app.Context) {
	ensureSession(ctx, nil)
}

func (v *LoginView) validate() bool {
	errs := map[string]string{}
	if v.email == "" {
		errs["email"] = T("validate.email_required")
	} else if !emailRe.MatchString(v.email) {
		errs["email"] = T("validate.email_invalid")
	}
	if v.password == "" {
		errs["password"] = T("validate.password_required")
	} else if len(v.password) < 6 {
		errs["password"] = T("validate.password_short")
	}
	v.fieldErrs = errs
	return len(errs) == 0
}

func (v *LoginView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if !v.validate() {
		return
	}

	v.submitting = true
	v.errMsg = ""
	email, password := v.email, v.password

	ctx.Async(func() {
		err := state().session.Login(context.Background(), email, password)
		ctx.Dispatch(func(ctx app.Context) {
			v.submitting = false
			if err != nil {
				v.errMsg = errorText(err)
				return
			}
			ctx.NewAction(sessionChangedAction)
			ctx.Navigate("/")
		})
	})
}

func (v *LoginView) Render() app.UI {
	submitLabel := T("login.submit")
	if v.submitting {
		submitLabel = T("login.submitting")
	}

	return withLayout(
		app.Div().Class("card auth-card").Body(
			app.Div().Class("auth-header").Body(
				app.H1().Text(T("login.title")),
				app.P().Text(T("login.subtitle")),
			),
			errorBanner(v.errMsg),
			app.Form().Class("form").OnSubmit(v.onSubmit).Body(
				textField(fieldProps{
					label:  T("login.email"),
					name:   "email",
					typ:    "email",
					value:  v.email,
					errMsg: v.fieldErrs["email"],
					onChange: func(ctx app.Context, value string) {
						v.email = value
						delete(v.fieldErrs, "email")
						v.errMsg = ""
					},
				}),
				textField(fieldProps{
					label:  T("login.password"),
					name:   "password",
					typ:    "password",
					value:  v.password,
					errMsg: v.fieldErrs["password"],
					onChange: func(ctx app.Context, value string) {
						v.password = value
						delete(v.fieldErrs, "password")
						v.errMsg = ""
					},
				}),
				app.Button().Class("btn btn-primary btn-block").
					Type("submit").
					Disabled(v.submitting).
					Text(submitLabel),
			),
			app.P().Class("auth-footer").Body(
				app.Text(T("login.no_account")+" "),
				app.A().Href("/register").Text(T("login.register_here")),
			),
		),
	)
}
