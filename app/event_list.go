package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/model"
)

// renderEventList shows a grid of event cards with pagination controls.
func renderEventList(events []model.Event, pagination *model.Pagination, loading bool, errMsg string, onPageChange func(app.Context, int)) app.UI {
	if loading {
		return loadingIndicator()
	}
	if errMsg != "" {
		return errorBanner(errMsg)
	}
	if len(events) == 0 {
		return app.Div().Class("empty-state").Body(
			app.P().Class("empty-title").Text(T("list.empty_title")),
			app.P().Text(T("list.empty_hint")),
		)
	}

	return app.Div().Class("event-list").Body(
		app.Div().Class("event-grid").Body(
			app.Range(events).Slice(func(i int) app.UI {
				return eventCard(events[i])
			}),
		),
		app.If(pagination != nil && pagination.TotalPages > 1, func() app.UI {
			return renderPagination(*pagination, onPageChange)
		}),
	)
}

// hasPrevPage and hasNextPage bound the pagination controls: the next
// button locks on the last page, so a page beyond total_pages can never be
// requested.
func hasPrevPage(p model.Pagination) bool {
	return p.Page > 1
}

func hasNextPage(p model.Pagination) bool {
	return p.Page < p.TotalPages
}

func renderPagination(p model.Pagination, onPageChange func(app.Context, int)) app.UI {
	return app.Div().Class("pagination").Body(
		app.Button().Class("btn").
			Disabled(!hasPrevPage(p)).
			Text(T("list.prev")).
			OnClick(func(ctx app.Context, e app.Event) {
				onPageChange(ctx, p.Page-1)
			}),
		app.Span().Class("page-info").Text(T("list.page_info", map[string]any{
			"Page":       p.Page,
			"TotalPages": p.TotalPages,
			"Total":      p.Total,
		})),
		app.Button().Class("btn").
			Disabled(!hasNextPage(p)).
			Text(T("list.next")).
			OnClick(func(ctx app.Context, e app.Event) {
				onPageChange(ctx, p.Page+1)
			}),
	)
}

func eventCard(event model.Event) app.UI {
	detailHref := fmt.Sprintf("/events/%d", event.ID)

	capacityText := T("card.available", map[string]any{
		"Available": event.AvailableCapacity,
		"Capacity":  event.Capacity,
	})
	capacityClass := "capacity available"
	if event.IsFull {
		capacityText = T("card.full")
		capacityClass = "capacity full"
	}

	return app.Div().Class("card event-card").Body(
		app.Div().Class("event-card-header").Body(
			app.A().Href(detailHref).Class("event-card-title").Text(event.Name),
			statusBadge(event.ComputedStatus),
		),
		app.If(event.Description != "", func() app.UI {
			return app.P().Class("event-card-description").Text(event.Description)
		}),
		app.Div().Class("event-card-info").Body(
			app.If(event.Location != "", func() app.UI {
				return infoRow(T("card.location"), event.Location)
			}),
			infoRow(T("card.start"), formatDateTime(event.StartDate)),
			infoRow(T("card.end"), formatDateTime(event.EndDate)),
		),
		app.Div().Class(capacityClass).Text(capacityText),
		app.A().Href(detailHref).Body(
			app.Button().Class("btn btn-block").Text(T("card.view_details")),
		),
	)
}

func infoRow(label, value string) app.UI {
	return app.Div().Class("info-row").Body(
		app.Strong().Text(label),
		app.Span().Text(" "+value),
	)
}
