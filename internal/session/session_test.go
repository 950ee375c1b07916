package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventos/internal/api"
	"eventos/internal/model"
	"eventos/internal/service"
	"eventos/internal/storage"
)

// fakeBackend serves the auth endpoints a session manager touches. Only
// the token in validTokens passes /auth/me.
type fakeBackend struct {
	validTokens map[string]model.User
	password    string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != b.password {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Credenciales incorrectas"})
			return
		}
		json.NewEncoder(w).Encode(model.TokenResponse{AccessToken: "valid-token", TokenType: "bearer"})
	})

	mux.HandleFunc("POST /api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.User{ID: 2, Email: "new@example.com", Role: model.RoleAttendee})
	})

	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		user, ok := b.validTokens[token]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token inválido"})
			return
		}
		json.NewEncoder(w).Encode(user)
	})

	return mux
}

func newTestManager(t *testing.T, backend *fakeBackend) (*Manager, *storage.Memory) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	store := storage.NewMemory()
	auth := service.NewAuth(api.New(srv.URL, store))
	return NewManager(auth, store), store
}

func defaultBackend() *fakeBackend {
	return &fakeBackend{
		password: "secret123",
		validTokens: map[string]model.User{
			"valid-token": {ID: 1, Email: "ana@example.com", Role: model.RoleAttendee, IsActive: true},
		},
	}
}

func TestInitWithoutToken(t *testing.T) {
	m, _ := newTestManager(t, defaultBackend())

	if m.Status() != StatusUnknown {
		t.Fatalf("status before Init = %v, want unknown", m.Status())
	}
	m.Init(context.Background())
	if m.Status() != StatusUnauthenticated {
		t.Errorf("status = %v, want unauthenticated", m.Status())
	}
	if m.User() != nil {
		t.Errorf("user = %+v, want nil", m.User())
	}
}

func TestInitWithValidToken(t *testing.T) {
	m, store := newTestManager(t, defaultBackend())
	store.Set(storage.KeyToken, "valid-token")

	m.Init(context.Background())

	if !m.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if m.User().Email != "ana@example.com" {
		t.Errorf("user email = %q", m.User().Email)
	}
	if snapshot, ok := store.Get(storage.KeyUser); !ok || !strings.Contains(snapshot, "ana@example.com") {
		t.Errorf("user snapshot not persisted: %q", snapshot)
	}
}

func TestInitClearsStaleToken(t *testing.T) {
	m, store := newTestManager(t, defaultBackend())
	store.Set(storage.KeyToken, "expired-token")
	store.Set(storage.KeyUser, `{"id":1}`)

	m.Init(context.Background())

	if m.Status() != StatusUnauthenticated {
		t.Errorf("status = %v, want unauthenticated", m.Status())
	}
	if _, ok := store.Get(storage.KeyToken); ok {
		t.Error("stale token not cleared")
	}
	if _, ok := store.Get(storage.KeyUser); ok {
		t.Error("stale user snapshot not cleared")
	}
}

func TestLoginPersistsTokenAndUser(t *testing.T) {
	m, store := newTestManager(t, defaultBackend())

	if err := m.Login(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if token, _ := store.Get(storage.KeyToken); token != "valid-token" {
		t.Errorf("stored token = %q", token)
	}
	if _, ok := store.Get(storage.KeyUser); !ok {
		t.Error("user snapshot not persisted")
	}
}

func TestLoginFailureLeavesSessionUnset(t *testing.T) {
	m, store := newTestManager(t, defaultBackend())

	err := m.Login(context.Background(), "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if m.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
	if m.User() != nil {
		t.Errorf("user set after failed login: %+v", m.User())
	}
	if _, ok := store.Get(storage.KeyToken); ok {
		t.Error("no token should be stored after rejected credentials")
	}
}

func TestLoginProfileFetchFailure(t *testing.T) {
	// The login endpoint hands out a token /auth/me does not accept:
	// the token is persisted but the session must not become
	// authenticated.
	backend := defaultBackend()
	backend.validTokens = map[string]model.User{}
	m, _ := newTestManager(t, backend)

	err := m.Login(context.Background(), "ana@example.com", "secret123")
	if err == nil {
		t.Fatal("expected error when the profile fetch fails")
	}
	if m.IsAuthenticated() {
		t.Error("session authenticated without a profile")
	}
	if m.User() != nil {
		t.Errorf("user set without a profile: %+v", m.User())
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	m, store := newTestManager(t, defaultBackend())
	if err := m.Login(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout()
	m.Logout()

	if m.Status() != StatusUnauthenticated {
		t.Errorf("status = %v, want unauthenticated", m.Status())
	}
	if m.User() != nil {
		t.Error("user survived logout")
	}
	if _, ok := store.Get(storage.KeyToken); ok {
		t.Error("token survived logout")
	}
	if _, ok := store.Get(storage.KeyUser); ok {
		t.Error("user snapshot survived logout")
	}
}

func TestRegisterLogsIn(t *testing.T) {
	backend := defaultBackend()
	m, _ := newTestManager(t, backend)

	if err := m.Register(context.Background(), "new@example.com", "secret123", "Nuevo Usuario"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !m.IsAuthenticated() {
		t.Error("registration should end in an authenticated session")
	}
}

func TestRefreshUserFailureEndsSession(t *testing.T) {
	backend := defaultBackend()
	m, store := newTestManager(t, backend)
	if err := m.Login(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Revoke the token server-side, then refresh.
	backend.validTokens = map[string]model.User{}

	if err := m.RefreshUser(context.Background()); err == nil {
		t.Fatal("expected error from revoked token")
	}
	if m.IsAuthenticated() {
		t.Error("session survived a failed refresh")
	}
	if _, ok := store.Get(storage.KeyToken); ok {
		t.Error("token survived a failed refresh")
	}
}

func TestRefreshUserUpdatesProfile(t *testing.T) {
	backend := defaultBackend()
	m, _ := newTestManager(t, backend)
	if err := m.Login(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	updated := backend.validTokens["valid-token"]
	updated.RegisteredEvents = []model.Event{{ID: 5, Name: "Concierto"}}
	backend.validTokens["valid-token"] = updated

	if err := m.RefreshUser(context.Background()); err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if len(m.User().RegisteredEvents) != 1 {
		t.Errorf("registered events = %d, want 1", len(m.User().RegisteredEvents))
	}
}
