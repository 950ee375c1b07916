package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"eventos/internal/form"
	"eventos/internal/model"
)

// renderSessions lists the event's sessions. Organizers additionally get
// inline create/edit/delete controls.
func (v *EventDetailView) renderSessions(canManage bool) app.UI {
	event := v.event
	if len(event.Sessions) == 0 && !canManage {
		return app.Text("")
	}

	return app.Div().Class("card sessions").Body(
		app.Div().Class("sessions-header").Body(
			app.H2().Text(T("detail.sessions_title")),
			app.If(canManage && !v.showSessionNew && v.editingSession == nil, func() app.UI {
				return app.Button().Class("btn btn-small").
					Text(T("session.add")).
					OnClick(func(ctx app.Context, e app.Event) {
						v.showSessionNew = true
					})
			}),
		),
		errorBanner(v.sessionErr),
		app.If(v.showSessionNew, func() app.UI {
			return &sessionForm{
				Saving:   v.sessionSaving,
				OnSubmit: v.onSessionCreate,
				OnCancel: v.closeSessionForm,
			}
		}),
		app.Range(event.Sessions).Slice(func(i int) app.UI {
			return v.renderSessionItem(event.Sessions[i], canManage)
		}),
	)
}

func (v *EventDetailView) renderSessionItem(s model.Session, canManage bool) app.UI {
	if v.editingSession != nil && v.editingSession.ID == s.ID {
		return &sessionForm{
			Session:  v.editingSession,
			Saving:   v.sessionSaving,
			OnSubmit: v.onSessionUpdate,
			OnCancel: v.closeSessionForm,
		}
	}

	return app.Div().Class("session-item").Body(
		app.H3().Text(s.Title),
		app.If(s.Description != "", func() app.UI {
			return app.P().Class("session-description").Text(s.Description)
		}),
		app.If(s.SpeakerName != "", func() app.UI {
			return infoRow(T("detail.speaker"), s.SpeakerName)
		}),
		infoRow(T("detail.schedule"), formatDateTime(s.StartTime)+" - "+formatDateTime(s.EndTime)),
		app.If(s.Location != "", func() app.UI {
			return infoRow(T("detail.location"), s.Location)
		}),
		app.If(canManage, func() app.UI {
			session := s
			return app.Div().Class("session-actions").Body(
				app.Button().Class("btn btn-small").
					Text(T("session.edit")).
					OnClick(func(ctx app.Context, e app.Event) {
						v.showSessionNew = false
						v.editingSession = &session
					}),
				app.Button().Class("btn btn-small btn-danger").
					Text(T("session.delete")).
					OnClick(func(ctx app.Context, e app.Event) {
						v.onSessionDelete(ctx, session.ID)
					}),
			)
		}),
	)
}

func (v *EventDetailView) closeSessionForm(ctx app.Context) {
	v.showSessionNew = false
	v.editingSession = nil
	v.sessionErr = ""
}

func (v *EventDetailView) onSessionCreate(ctx app.Context, values form.SessionValues) {
	v.sessionSaving = true
	v.sessionErr = ""
	data := form.BuildSessionCreate(v.eventID, values)

	ctx.Async(func() {
		_, err := state().sessions.Create(context.Background(), data)
		ctx.Dispatch(func(ctx app.Context) {
			v.sessionSaving = false
			if err != nil {
				v.sessionErr = errorText(err)
				return
			}
			v.closeSessionForm(ctx)
			v.load(ctx)
		})
	})
}

func (v *EventDetailView) onSessionUpdate(ctx app.Context, values form.SessionValues) {
	if v.editingSession == nil {
		return
	}
	v.sessionSaving = true
	v.sessionErr = ""
	id := v.editingSession.ID
	patch := form.BuildSessionPatch(values)

	ctx.Async(func() {
		_, err := state().sessions.Update(context.Background(), id, patch)
		ctx.Dispatch(func(ctx app.Context) {
			v.sessionSaving = false
			if err != nil {
				v.sessionErr = errorText(err)
				return
			}
			v.closeSessionForm(ctx)
			v.load(ctx)
		})
	})
}

func (v *EventDetailView) onSessionDelete(ctx app.Context, id int64) {
	if !confirmDialog(T("session.delete_confirm")) {
		return
	}

	ctx.Async(func() {
		err := state().sessions.Delete(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.sessionErr = errorText(err)
				return
			}
			v.load(ctx)
		})
	})
}

// sessionForm edits one session inline on the detail page.
type sessionForm struct {
	app.Compo

	Session  *model.Session // nil when creating
	Saving   bool
	OnSubmit func(ctx app.Context, values form.SessionValues)
	OnCancel func(ctx app.Context)

	values form.SessionValues
	errs   map[string]string
}

func (f *sessionForm) OnMount(ctx app.Context) {
	f.values = form.ValuesFromSession(f.Session)
	f.errs = map[string]string{}
}

func (f *sessionForm) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	errs := form.ValidateSession(f.values)
	if len(errs) > 0 {
		f.errs = errs
		return
	}
	f.errs = map[string]string{}
	if f.OnSubmit != nil {
		f.OnSubmit(ctx, f.values)
	}
}

func (f *sessionForm) fieldErr(field string) string {
	if msg, ok := f.errs[field]; ok {
		return T(msg)
	}
	return ""
}

func (f *sessionForm) Render() app.UI {
	title := T("session.form_title_new")
	if f.Session != nil {
		title = T("session.form_title_edit")
	}
	submitLabel := T("session.save")
	if f.Saving {
		submitLabel = T("form.saving")
	}

	return app.Div().Class("session-form").Body(
		app.H3().Text(title),
		app.Form().Class("form").OnSubmit(f.onSubmit).Body(
			textField(fieldProps{
				label:  T("session.title"),
				name:   "title",
				typ:    "text",
				value:  f.values.Title,
				errMsg: f.fieldErr("title"),
				onChange: func(ctx app.Context, value string) {
					f.values.Title = value
					delete(f.errs, "title")
				},
			}),
			textareaField(fieldProps{
				label: T("session.description"),
				name:  "session_description",
				value: f.values.Description,
				onChange: func(ctx app.Context, value string) {
					f.values.Description = value
				},
			}),
			textField(fieldProps{
				label: T("session.speaker_name"),
				name:  "speaker_name",
				typ:   "text",
				value: f.values.SpeakerName,
				onChange: func(ctx app.Context, value string) {
					f.values.SpeakerName = value
				},
			}),
			textareaField(fieldProps{
				label: T("session.speaker_bio"),
				name:  "speaker_bio",
				value: f.values.SpeakerBio,
				onChange: func(ctx app.Context, value string) {
					f.values.SpeakerBio = value
				},
			}),
			textField(fieldProps{
				label:  T("session.start"),
				name:   "start_time",
				typ:    "datetime-local",
				value:  f.values.StartTime,
				errMsg: f.fieldErr("start_time"),
				onChange: func(ctx app.Context, value string) {
					f.values.StartTime = value
					delete(f.errs, "start_time")
				},
			}),
			textField(fieldProps{
				label:  T("session.end"),
				name:   "end_time",
				typ:    "datetime-local",
				value:  f.values.EndTime,
				errMsg: f.fieldErr("end_time"),
				onChange: func(ctx app.Context, value string) {
					f.values.EndTime = value
					delete(f.errs, "end_time")
				},
			}),
			textField(fieldProps{
				label: T("session.location"),
				name:  "session_location",
				typ:   "text",
				value: f.values.Location,
				onChange: func(ctx app.Context, value string) {
					f.values.Location = value
				},
			}),
			textField(fieldProps{
				label:  T("session.capacity"),
				name:   "session_capacity",
				typ:    "number",
				value:  f.values.Capacity,
				errMsg: f.fieldErr("capacity"),
				onChange: func(ctx app.Context, value string) {
					f.values.Capacity = value
					delete(f.errs, "capacity")
				},
			}),
			app.Div().Class("form-actions").Body(
				app.Button().Class("btn").
					Type("button").
					Disabled(f.Saving).
					Text(T("session.cancel")).
					OnClick(func(ctx app.Context, e app.Event) {
						if f.OnCancel != nil {
							f.OnCancel(ctx)
						}
					}),
				app.Button().Class("btn btn-primary").
					Type("submit").
					Disabled(f.Saving).
					Text(submitLabel),
			),
		),
	)
}
