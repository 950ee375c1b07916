package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
	"eventos/internal/service"
	"eventos/internal/session"
)

const defaultPageSize = 6

// HomeView lists events with search and status filters. Unauthenticated
// visitors get a welcome screen instead.
type HomeView struct {
	app.Compo

	events     []model.Event
	pagination *model.Pagination
	loading    bool
	errMsg     string

	page   int
	search string
	status string

	// fetchSeq tags every fetch so a stale slower response cannot
	// overwrite the state of a newer one.
	fetchSeq uint64
	fetched  bool
}

func (h *HomeView) OnInit() {
	h.page = 1
}

func (h *HomeView) OnMount(ctx app.Context) {
	ensureSession(ctx, h.maybeFetch)
	h.maybeFetch(ctx)
}

func (h *HomeView) OnNav(ctx app.Context) {
	h.maybeFetch(ctx)
}

// maybeFetch loads the first page once the session check finished and a
// user is present. It is re-invoked on every session transition.
func (h *HomeView) maybeFetch(ctx app.Context) {
	s := state()
	if !s.session.IsAuthenticated() {
		h.fetched = false
		return
	}
	if h.fetched {
		return
	}
	h.fetched = true
	h.fetch(ctx)
}

func (h *HomeView) fetch(ctx app.Context) {
	h.loading = true
	h.errMsg = ""
	h.fetchSeq++
	seq := h.fetchSeq

	params := service.ListParams{
		Page:    h.page,
		PerPage: defaultPageSize,
		Search:  h.search,
		Status:  h.status,
	}

	ctx.Async(func() {
		page, err := state().events.List(context.Background(), params)
		ctx.Dispatch(func(ctx app.Context) {
			if seq != h.fetchSeq {
				return
			}
			h.loading = false
			if err != nil {
				h.errMsg = errorText(err)
				return
			}
			h.events = page.Events
			h.pagination = &page.Pagination
		})
	})
}

func (h *HomeView) onPageChange(ctx app.Context, page int) {
	h.page = page
	h.fetch(ctx)
	app.Window().Call("scrollTo", 0, 0)
}

func (h *HomeView) onSearchInput(ctx app.Context, e app.Event) {
	h.search = ctx.JSSrc().Get("value").String()
}

func (h *HomeView) onSearchSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	h.page = 1
	h.fetch(ctx)
}

func (h *HomeView) onStatusChange(ctx app.Context, e app.Event) {
	h.status = ctx.JSSrc().Get("value").String()
	h.page = 1
	h.fetch(ctx)
}

func (h *HomeView) Render() app.UI {
	s := state()

	if s.session.Status() == session.StatusUnknown {
		return withLayout(loadingIndicator())
	}

	if !s.session.IsAuthenticated() {
		return withLayout(h.renderWelcome())
	}

	user := s.session.User()

	return withLayout(
		app.Div().Class("page-header").Body(
			app.H1().Text(T("home.title")),
			app.If(user.CanManageEvents(), func() app.UI {
				return app.A().Href("/events/create").Body(
					app.Button().Class("btn btn-primary").Text(T("home.create_event")),
				)
			}),
		),
		app.Div().Class("card filters").Body(
			app.Form().Class("filters-form").OnSubmit(h.onSearchSubmit).Body(
				app.Input().
					Class("field-input").
					Type("text").
					Placeholder(T("home.search_placeholder")).
					Value(h.search).
					OnInput(h.onSearchInput),
				app.Button().Class("btn").Type("submit").Text(T("home.search")),
				app.Select().Class("field-input").OnChange(h.onStatusChange).Body(
					app.Option().Value("").Text(T("home.all_statuses")).Selected(h.status == ""),
					statusOption(model.StatusScheduled, h.status),
					statusOption(model.StatusOngoing, h.status),
					statusOption(model.StatusCompleted, h.status),
					statusOption(model.StatusCancelled, h.status),
				),
			),
		),
		renderEventList(h.events, h.pagination, h.loading, h.errMsg, h.onPageChange),
	)
}

func statusOption(status, current string) app.UI {
	return app.Option().Value(status).Text(statusLabel(status)).Selected(status == current)
}

func (h *HomeView) renderWelcome() app.UI {
	return app.Div().Class("card welcome").Body(
		app.H1().Text(T("home.welcome_title")),
		app.P().Text(T("home.welcome_text")),
		app.Div().Class("welcome-actions").Body(
			app.A().Href("/login").Body(
				app.Button().Class("btn btn-primary").Text(T("nav.login")),
			),
			app.A().Href("/register").Body(
				app.Button().Class("btn btn-success").Text(T("nav.register")),
			),
		),
	)
}
