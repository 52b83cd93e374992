package auth

import (
	"context"
	"sync"

	"github.com/jsoto007/nush/internal/api"
)

// Session holds the authenticated user for the lifetime of the app. It is
// an explicit store injected into whatever consumes it, not an ambient
// global; create one per API client and dispose of it with the app.
type Session struct {
	client *api.Client

	mu    sync.Mutex
	user  *User
	token string
}

func NewSession(client *api.Client) *Session {
	return &Session{client: client}
}

type userEnvelope struct {
	User  *User  `json:"user"`
	Token string `json:"token,omitempty"`
}

// CurrentUser returns the signed-in user, or nil.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the bearer token for the current session, if any.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) setUser(user *User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
	s.client.SetToken(token)
}

// Bootstrap asks the server who the current session belongs to, typically
// on app start when a session cookie may already exist. An unauthenticated
// answer is not an error; the session just stays signed out.
func (s *Session) Bootstrap(ctx context.Context) error {
	var payload userEnvelope
	if err := s.client.Get(ctx, "/auth/me", &payload); err != nil {
		s.setUser(nil, "")
		return nil
	}
	token := payload.Token
	if token == "" {
		// Session-cookie auth answers without a token; keep the one we have.
		token = s.Token()
	}
	s.setUser(payload.User, token)
	return nil
}

// Login authenticates with email and password.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	var payload userEnvelope
	err := s.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	s.setUser(payload.User, payload.Token)
	return payload.User, nil
}

// Register creates an account and signs it in.
func (s *Session) Register(ctx context.Context, name, email, password string) (*User, error) {
	var payload userEnvelope
	err := s.client.Post(ctx, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	s.setUser(payload.User, payload.Token)
	return payload.User, nil
}

// Logout ends the server session and clears local state regardless of
// whether the server call succeeded.
func (s *Session) Logout(ctx context.Context) {
	_ = s.client.Post(ctx, "/auth/logout", map[string]string{}, nil)
	s.setUser(nil, "")
}

// ForgotPassword requests a reset email.
func (s *Session) ForgotPassword(ctx context.Context, email string) error {
	return s.client.Post(ctx, "/auth/forgot-password", map[string]string{
		"email": email,
	}, nil)
}

// ResetPassword completes a reset started by ForgotPassword.
func (s *Session) ResetPassword(ctx context.Context, token, password string) error {
	return s.client.Post(ctx, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}
