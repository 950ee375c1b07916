package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// withLayout wraps page content with the navbar and the centered main
// column shared by every view.
func withLayout(content ...app.UI) app.UI {
	return app.Div().Class("page").Body(
		&navbar{},
		app.Main().Class("page-content").Body(content...),
	)
}

func loadingIndicator() app.UI {
	return app.Div().Class("loading").Body(
		app.Div().Class("loading-spinner"),
		app.Div().Text(T("common.loading")),
	)
}

func errorBanner(msg string) app.UI {
	if msg == "" {
		return app.Text("")
	}
	return app.Div().Class("error-message").Text(msg)
}

func statusBadge(computedStatus string) app.UI {
	return app.Span().
		Class("status-badge status-"+computedStatus).
		Text(statusLabel(computedStatus))
}

// confirmDialog asks the user before a destructive action.
func confirmDialog(msg string) bool {
	return app.Window().Call("confirm", msg).Bool()
}

// field state shared by the input helpers: current value, change callback
// and the validation message to show under the input.
type fieldProps struct {
	label    string
	name     string
	typ      string
	value    string
	errMsg   string
	disabled bool
	onChange func(ctx app.Context, value string)
}

func textField(p fieldProps) app.UI {
	input := app.Input().
		Class(fieldClass(p)).
		Type(p.typ).
		Name(p.name).
		Value(p.value).
		Disabled(p.disabled).
		OnInput(func(ctx app.Context, e app.Event) {
			if p.onChange != nil {
				p.onChange(ctx, ctx.JSSrc().Get("value").String())
			}
		})
	return fieldWrap(p, input)
}

func textareaField(p fieldProps) app.UI {
	area := app.Textarea().
		Class(fieldClass(p)).
		Name(p.name).
		Text(p.value).
		Disabled(p.disabled).
		OnInput(func(ctx app.Context, e app.Event) {
			if p.onChange != nil {
				p.onChange(ctx, ctx.JSSrc().Get("value").String())
			}
		})
	return fieldWrap(p, area)
}

func fieldClass(p fieldProps) string {
	cls := "field-input"
	if p.errMsg != "" {
		cls += " invalid"
	}
	return cls
}

func fieldWrap(p fieldProps, input app.UI) app.UI {
	return app.Div().Class("field").Body(
		app.If(p.label != "", func() app.UI {
			return app.Label().Class("field-label").For(p.name).Text(p.label)
		}),
		input,
		app.If(p.errMsg != "", func() app.UI {
			return app.Div().Class("field-error").Text(p.errMsg)
		}),
	)
}
