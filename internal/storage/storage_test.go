package storage

import "testing"

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	if _, ok := s.Get(KeyToken); ok {
		t.Error("empty store should miss")
	}

	s.Set(KeyToken, "abc")
	if v, ok := s.Get(KeyToken); !ok || v != "abc" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	s.Set(KeyToken, "def")
	if v, _ := s.Get(KeyToken); v != "def" {
		t.Errorf("overwrite lost: %q", v)
	}

	s.Del(KeyToken)
	if _, ok := s.Get(KeyToken); ok {
		t.Error("deleted key still present")
	}
}

func TestClearSession(t *testing.T) {
	s := NewMemory()
	s.Set(KeyToken, "tok")
	s.Set(KeyUser, `{"id":1}`)
	s.Set("theme", "dark")

	ClearSession(s)

	if _, ok := s.Get(KeyToken); ok {
		t.Error("token survived")
	}
	if _, ok := s.Get(KeyUser); ok {
		t.Error("user snapshot survived")
	}
	if _, ok := s.Get("theme"); !ok {
		t.Error("unrelated keys must survive")
	}
}
