package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestSessionLifecycle(t *testing.T) {
	sess := New(NewMemoryStore())
	ctx := context.Background()

	if sess.Active(ctx) {
		t.Error("fresh session must not be active")
	}
	if sess.Token(ctx) != "" {
		t.Error("fresh session must have no token")
	}

	profile := Profile{ID: "1", Name: "Ana Torres", Role: "admin", Email: "ana@example.com"}
	if err := sess.Establish(ctx, "token-value", profile); err != nil {
		t.Fatalf("unexpected establish error: %v", err)
	}

	if !sess.Active(ctx) {
		t.Error("expected session active after establish")
	}
	if got := sess.Token(ctx); got != "token-value" {
		t.Errorf("expected persisted token, got %q", got)
	}
	stored, err := sess.Profile(ctx)
	if err != nil {
		t.Fatalf("unexpected profile error: %v", err)
	}
	if stored != profile {
		t.Errorf("expected %+v, got %+v", profile, stored)
	}

	if err := sess.Clear(ctx); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if sess.Active(ctx) {
		t.Error("expected session inactive after clear")
	}
	if _, err := sess.Profile(ctx); err == nil {
		t.Error("expected missing profile after clear")
	}
}

func TestEstablishRejectsEmptyToken(t *testing.T) {
	sess := New(NewMemoryStore())
	if err := sess.Establish(context.Background(), "", Profile{ID: "1"}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("any-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestExpiredReadsClaimWithoutVerification(t *testing.T) {
	ctx := context.Background()

	sess := New(NewMemoryStore())
	if err := sess.Establish(ctx, signedToken(t, time.Now().Add(-time.Hour)), Profile{ID: "1"}); err != nil {
		t.Fatalf("establish: %v", err)
	}
	if !sess.Expired(ctx) {
		t.Error("expected expired for past exp claim")
	}

	sess = New(NewMemoryStore())
	if err := sess.Establish(ctx, signedToken(t, time.Now().Add(time.Hour)), Profile{ID: "1"}); err != nil {
		t.Fatalf("establish: %v", err)
	}
	if sess.Expired(ctx) {
		t.Error("expected not expired for future exp claim")
	}

	// Opaque tokens are left for the upstream to judge.
	sess = New(NewMemoryStore())
	if err := sess.Establish(ctx, "opaque-token", Profile{ID: "1"}); err != nil {
		t.Fatalf("establish: %v", err)
	}
	if sess.Expired(ctx) {
		t.Error("non-JWT token must not report expired")
	}
}
