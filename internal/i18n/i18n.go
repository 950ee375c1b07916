// Package i18n renders the UI string catalog. Spanish is the product
// language, with an English catalog kept as fallback material for the
// message IDs themselves.
package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator builds a Translator for the given locale (e.g. "es"),
// loading the embedded active.*.toml catalogs.
func NewTranslator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, locale, tag.String()),
	}
}

// T renders the message identified by key. Unknown keys render as the key
// itself so a missing translation is visible rather than fatal.
func (t *Translator) T(key string, data ...map[string]any) string {
	if key == "" {
		return ""
	}
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		return key
	}
	return msg
}
