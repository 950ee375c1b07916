package main

import (
	"context"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// RegisterView creates an account, then logs in with the same credentials
// since registration alone does not return a session.
type RegisterView struct {
	app.Compo

	fullName        string
	email           string
	password        string
	confirmPassword string

	fieldErrs  map[string]string
	errMsg     string
	submitting bool
}

func (v *RegisterView) OnInit() {
	v.fieldErrs = map[string]string{}
}

func (v *RegisterView) OnMount(ctx app.Context) {
	ensureSession(ctx, nil)
}

func (v *RegisterView) validate() bool {
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
	if v.confirmPassword == "" {
		errs["confirm"] = T("validate.confirm_required")
	} else if v.password != v.confirmPassword {
		errs["confirm"] = T("validate.password_mismatch")
	}
	v.fieldErrs = errs
	return len(errs) == 0
}

func (v *RegisterView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if !v.validate() {
		return
	}

	v.submitting = true
	v.errMsg = ""
	email, password := v.email, v.password
	fullName := strings.TrimSpace(v.fullName)

	ctx.Async(func() {
		err := state().session.Register(context.Background(), email, password, fullName)
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

func (v *RegisterView) Render() app.UI {
	submitLabel := T("register.submit")
	if v.submitting {
		submitLabel = T("register.submitting")
	}

	clear := func(field string) {
		delete(v.fieldErrs, field)
		v.errMsg = ""
	}

	return withLayout(
		app.Div().Class("card auth-card").Body(
			app.Div().Class("auth-header").Body(
				app.H1().Text(T("register.title")),
				app.P().Text(T("register.subtitle")),
			),
			errorBanner(v.errMsg),
			app.Form().Class("form").OnSubmit(v.onSubmit).Body(
				textField(fieldProps{
					label: T("register.full_name"),
					name:  "full_name",
					typ:   "text",
					value: v.fullName,
					onChange: func(ctx app.Context, value string) {
						v.fullName = value
					},
				}),
				textField(fieldProps{
					label:  T("login.email"),
					name:   "email",
					typ:    "email",
					value:  v.email,
					errMsg: v.fieldErrs["email"],
					onChange: func(ctx app.Context, value string) {
						v.email = value
						clear("email")
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
						clear("password")
					},
				}),
				textField(fieldProps{
					label:  T("register.confirm_password"),
					name:   "confirm_password",
					typ:    "password",
					value:  v.confirmPassword,
					errMsg: v.fieldErrs["confirm"],
					onChange: func(ctx app.Context, value string) {
						v.confirmPassword = value
						clear("confirm")
					},
				}),
				app.Button().Class("btn btn-primary btn-block").
					Type("submit").
					Disabled(v.submitting).
					Text(submitLabel),
			),
			app.P().Class("auth-footer").Body(
				app.Text(T("register.have_account")+" "),
				app.A().Href("/login").Text(T("register.login_here")),
			),
		),
	)
}
