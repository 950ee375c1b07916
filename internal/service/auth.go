// Package service holds the typed wrappers over the API client, one per
// backend resource. Methods validate required ids, build query strings and
// decode the documented envelopes; every failure propagates unchanged for
// the page to render.
package service

import (
	"context"

	"eventos/internal/api"
	"eventos/internal/model"
)

// Auth wraps the /auth endpoints.
type Auth struct {
	client *api.Client
}

func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

// Login exchanges credentials for a bearer token. It does not persist the
// token; that is the session manager's job.
func (s *Auth) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var token model.TokenResponse
	if err := s.client.Post(ctx, "/auth/login", body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Register creates an account. The backend returns the new user but no
// usable session; callers must log in afterwards.
func (s *Auth) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	body := map[string]any{"email": email, "password": password}
	if fullName != "" {
		body["full_name"] = fullName
	}
	var user model.User
	if err := s.client.Post(ctx, "/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the authenticated profile, including the role-scoped
// registered_events / created_events_count extras.
func (s *Auth) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
