package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	app.Route("/", func() app.Composer { return &HomeView{} })
	app.Route("/login", func() app.Composer { return &LoginView{} })
	app.Route("/register", func() app.Composer { return &RegisterView{} })
	app.Route("/profile", func() app.Composer { return &ProfileView{} })
	app.Route("/events/create", func() app.Composer { return &CreateEventView{} })
	app.RouteWithRegexp(`^/events/\d+$`, func() app.Composer { return &EventDetailView{} })
	app.RouteWithRegexp(`^/events/\d+/edit$`, func() app.Composer { return &EditEventView{} })
	app.RunWhenOnBrowser()
}
