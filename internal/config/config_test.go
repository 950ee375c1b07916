package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EVENTOS_ADDR", "")
	t.Setenv("EVENTOS_API_URL", "")
	t.Setenv("EVENTOS_LOCALE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.APIURL != "http://127.0.0.1:5000" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Locale != "es" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EVENTOS_ADDR", ":9000")
	t.Setenv("EVENTOS_API_URL", "https://api.eventos.example.com")
	t.Setenv("EVENTOS_LOCALE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.APIURL != "https://api.eventos.example.com" || cfg.Locale != "en" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadAPIURL(t *testing.T) {
	t.Setenv("EVENTOS_API_URL", "not a url")
	if _, err := Load(); err == nil {
		t.Error("expected error for URL without scheme")
	}
}
