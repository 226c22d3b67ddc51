package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "jane@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	got, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if got != userID {
		t.Fatalf("expected user ID %s, got %s", userID, got)
	}
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	access, _ := m.GenerateAccessToken(userID, "a@b.com")
	refresh, _ := m.GenerateRefreshToken(userID)

	if _, err := m.ValidateAccessToken(refresh); err == nil {
		t.Fatal("refresh token must not validate as access token")
	}
	if _, err := m.ValidateRefreshToken(access); err == nil {
		t.Fatal("access token must not validate as refresh token")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	m := newTestManager()
	other := NewManager("different-secret", "also-different", 15*time.Minute, 168*time.Hour)

	token, _ := m.GenerateAccessToken(uuid.New(), "a@b.com")
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "a@b.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := newTestManager()
	if _, err := m.ValidateAccessToken("not.a.token"); err == nil {
		t.Fatal("garbage must be rejected")
	}
}
