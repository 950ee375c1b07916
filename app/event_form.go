package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/form"
	"eventos/internal/model"
)

// eventForm is the create/edit form. Which fields are enabled comes from
// the editable-fields decision table, and the submitted payload is built
// from the exact same capability record, so a value left in a previously
// editable input can never be sent once the rules lock that field.
type eventForm struct {
	app.Compo

	// Props.
	Event    *model.Event // nil when creating
	Saving   bool
	ErrMsg   string
	OnCreate func(ctx app.Context, data model.EventCreate)
	OnUpdate func(ctx app.Context, patch model.EventUpdate)
	OnCancel func(ctx app.Context)

	values form.EventValues
	errs   map[string]string
}

func (f *eventForm) OnMount(ctx app.Context) {
	f.values = form.ValuesFromEvent(f.Event)
	f.errs = map[string]string{}
}

func (f *eventForm) caps() form.EventFieldCaps {
	if f.Event == nil {
		return form.EditableEventFields(true, "", time.Time{}, time.Now())
	}
	start, _ := model.ParseTime(f.Event.StartDate)
	return form.EditableEventFields(false, f.Event.ComputedStatus, start, time.Now())
}

func (f *eventForm) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()

	caps := f.caps()
	errs := form.ValidateEvent(caps, f.values)
	if len(errs) > 0 {
		f.errs = errs
		return
	}
	f.errs = map[string]string{}

	if f.Event == nil {
		if f.OnCreate != nil {
			f.OnCreate(ctx, form.BuildEventCreate(f.values))
		}
		return
	}
	if f.OnUpdate != nil {
		f.OnUpdate(ctx, form.BuildEventPatch(caps, f.values, f.Event))
	}
}

func (f *eventForm) fieldErr(field string) string {
	if msg, ok := f.errs[field]; ok {
		return T(msg)
	}
	return ""
}

func (f *eventForm) Render() app.UI {
	caps := f.caps()
	editing := f.Event != nil
	completed := editing && f.Event.ComputedStatus == model.StatusCompleted

	title := T("form.create_title")
	submitLabel := T("form.save_create")
	if editing {
		title = T("form.edit_title")
		submitLabel = T("form.save_update")
	}
	if f.Saving {
		submitLabel = T("form.saving")
	}

	return app.Div().Class("card").Body(
		app.H2().Text(title),
		errorBanner(f.ErrMsg),
		app.If(completed, func() app.UI {
			return errorBanner(T("form.completed_notice"))
		}),
		app.If(editing, func() app.UI {
			return f.renderStatusNotice()
		}),
		app.Form().Class("form").OnSubmit(f.onSubmit).Body(
			textField(fieldProps{
				label:    T("form.name"),
				name:     "name",
				typ:      "text",
				value:    f.values.Name,
				errMsg:   f.fieldErr("name"),
				disabled: !caps.Name,
				onChange: func(ctx app.Context, value string) {
					f.values.Name = value
					delete(f.errs, "name")
				},
			}),
			textareaField(fieldProps{
				label:    T("form.description"),
				name:     "description",
				value:    f.values.Description,
				disabled: !caps.Description,
				onChange: func(ctx app.Context, value string) {
					f.values.Description = value
				},
			}),
			textField(fieldProps{
				label:    T("form.location"),
				name:     "location",
				typ:      "text",
				value:    f.values.Location,
				disabled: !caps.Location,
				onChange: func(ctx app.Context, value string) {
					f.values.Location = value
				},
			}),
			textField(fieldProps{
				label:    T("form.start"),
				name:     "start_date",
				typ:      "datetime-local",
				value:    f.values.StartDate,
				errMsg:   f.fieldErr("start_date"),
				disabled: !caps.StartDate,
				onChange: func(ctx app.Context, value string) {
					f.values.StartDate = value
					delete(f.errs, "start_date")
				},
			}),
			textField(fieldProps{
				label:    T("form.end"),
				name:     "end_date",
				typ:      "datetime-local",
				value:    f.values.EndDate,
				errMsg:   f.fieldErr("end_date"),
				disabled: !caps.EndDate,
				onChange: func(ctx app.Context, value string) {
					f.values.EndDate = value
					delete(f.errs, "end_date")
				},
			}),
			textField(fieldProps{
				label:    T("form.capacity"),
				name:     "capacity",
				typ:      "number",
				value:    f.values.Capacity,
				errMsg:   f.fieldErr("capacity"),
				disabled: !caps.Capacity,
				onChange: func(ctx app.Context, value string) {
					f.values.Capacity = value
					delete(f.errs, "capacity")
				},
			}),
			app.If(editing && caps.Status, func() app.UI {
				return f.renderStatusSelect()
			}),
			app.Div().Class("form-actions").Body(
				app.If(f.OnCancel != nil, func() app.UI {
					return app.Button().Class("btn").
						Type("button").
						Disabled(f.Saving).
						Text(T("form.cancel")).
						OnClick(func(ctx app.Context, e app.Event) {
							f.OnCancel(ctx)
						})
				}),
				app.Button().Class("btn btn-primary").
					Type("submit").
					Disabled(f.Saving || !caps.Any() || completed).
					Text(submitLabel),
			),
		),
	)
}

// renderStatusNotice explains what the current lifecycle status allows.
func (f *eventForm) renderStatusNotice() app.UI {
	var hint string
	switch f.Event.ComputedStatus {
	case model.StatusOngoing:
		hint = T("form.state_ongoing_hint")
	case model.StatusCompleted:
		hint = T("form.state_completed_hint")
	case model.StatusCancelled:
		hint = T("form.state_cancelled_hint")
	}

	return app.Div().Class("status-notice").Body(
		app.Strong().Text(T("form.state_label")+" "),
		app.Text(statusLabel(f.Event.ComputedStatus)),
		app.If(hint != "", func() app.UI {
			return app.Text(" - " + hint)
		}),
	)
}

func (f *eventForm) renderStatusSelect() app.UI {
	hint := T("form.status_hint_auto")
	if f.Event.ComputedStatus == model.StatusCancelled {
		hint = T("form.status_hint_cancelled")
	}

	return app.Div().Class("field").Body(
		app.Label().Class("field-label").For("status").Text(T("form.status")),
		app.Select().Class("field-input").Name("status").
			OnChange(func(ctx app.Context, e app.Event) {
				f.values.Status = ctx.JSSrc().Get("value").String()
			}).
			Body(
				app.Option().Value(model.StatusScheduled).
					Text(statusLabel(model.StatusScheduled)).
					Selected(f.values.Status == model.StatusScheduled),
				app.Option().Value(model.StatusCancelled).
					Text(statusLabel(model.StatusCancelled)).
					Selected(f.values.Status == model.StatusCancelled),
			),
		app.P().Class("field-hint").Text(hint),
	)
}
