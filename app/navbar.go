package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

type navbar struct {
	app.Compo
}

func (n *navbar) OnMount(ctx app.Context) {
	ensureSession(ctx, nil)
}

func (n *navbar) Render() app.UI {
	s := state()
	user := s.session.User()

	return app.Nav().Class("navbar").Body(
		app.A().Class("navbar-brand").Href("/").Text(T("nav.brand")),
		app.Ul().Class("navbar-links").Body(
			app.Li().Body(app.A().Href("/").Text(T("nav.home"))),
			app.If(s.session.IsAuthenticated(), func() app.UI {
				return app.Li().Body(app.A().Href("/profile").Text(T("nav.profile")))
			}),
			app.If(s.session.IsAuthenticated(), func() app.UI {
				return app.Li().Class("navbar-user").Body(
					app.Span().Class("navbar-email").
						Text(user.Email+" ("+roleLabel(user.Role)+")"),
					app.Button().Class("btn btn-small").
						Text(T("nav.logout")).
						OnClick(n.onLogout),
				)
			}).Else(func() app.UI {
				return app.Li().Body(
					app.A().Href("/login").Text(T("nav.login")),
					app.A().Class("navbar-register").Href("/register").Text(T("nav.register")),
				)
			}),
		),
	)
}

func (n *navbar) onLogout(ctx app.Context, e app.Event) {
	state().session.Logout()
	ctx.NewAction(sessionChangedAction)
	ctx.Navigate("/")
}
