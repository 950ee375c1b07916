package i18n

import (
	"strings"
	"testing"
)

func TestTranslatorSpanish(t *testing.T) {
	tr := NewTranslator("es")

	if got := tr.T("nav.login"); got != "Iniciar Sesión" {
		t.Errorf("nav.login = %q", got)
	}
	if got := tr.T("form.end_after_start"); got != "La fecha de fin debe ser posterior a la fecha de inicio" {
		t.Errorf("form.end_after_start = %q", got)
	}
}

func TestTranslatorEnglish(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("nav.login"); got != "Sign In" {
		t.Errorf("nav.login = %q", got)
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("es")

	got := tr.T("list.page_info", map[string]any{"Page": 2, "TotalPages": 5, "Total": 27})
	for _, want := range []string{"2", "5", "27"} {
		if !strings.Contains(got, want) {
			t.Errorf("list.page_info = %q, missing %s", got, want)
		}
	}
}

func TestTranslatorUnknownKey(t *testing.T) {
	tr := NewTranslator("es")

	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key rendered as %q", got)
	}
	if got := tr.T(""); got != "" {
		t.Errorf("empty key rendered as %q", got)
	}
}

func TestTranslatorBadLocaleFallsBack(t *testing.T) {
	tr := NewTranslator("not-a-locale")

	if got := tr.T("nav.login"); got == "nav.login" {
		t.Errorf("fallback locale failed to resolve nav.login")
	}
}
