package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Profile is the authenticated admin profile persisted alongside the token.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Session is the explicit session context handed to the transport client.
// It replaces ambient global state with Login/Logout lifecycle methods.
type Session struct {
	store Store
}

// New builds a session over the given store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Establish persists the token and profile issued at login.
func (s *Session) Establish(ctx context.Context, token string, profile Profile) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	return s.store.Set(ctx, KeyProfile, string(raw))
}

// Token returns the persisted bearer token, or empty when not logged in.
func (s *Session) Token(ctx context.Context) string {
	token, err := s.store.Get(ctx, KeyToken)
	if err != nil {
		return ""
	}
	return token
}

// Profile returns the persisted admin profile.
func (s *Session) Profile(ctx context.Context) (Profile, error) {
	raw, err := s.store.Get(ctx, KeyProfile)
	if err != nil {
		return Profile{}, err
	}
	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Clear tears down all persisted session state. Used by explicit logout and
// by the transport client on an auth-expiry response.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Del(ctx, KeyToken, KeyProfile)
}

// Active reports whether a token is present.
func (s *Session) Active(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Expired pre-checks the token's exp claim when it parses as a JWT. The
// upstream owns the signing secret, so the claim is read without verification;
// a token that does not parse is left for the upstream to judge.
func (s *Session) Expired(ctx context.Context) bool {
	token := s.Token(ctx)
	if token == "" {
		return false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
