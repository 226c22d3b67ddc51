package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/jwt"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if u, ok := r.byID[id]; ok {
		u.UpdateLastLogin()
	}
	return nil
}

type fakeSessionRepo struct {
	byToken map[string]*entities.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: make(map[string]*entities.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entities.Session) error {
	r.byToken[session.RefreshToken] = session
	return nil
}

func (r *fakeSessionRepo) FindByRefreshToken(ctx context.Context, refreshToken string) (*entities.Session, error) {
	return r.byToken[refreshToken], nil
}

func (r *fakeSessionRepo) UpdateLastUsed(ctx context.Context, id uuid.UUID) error {
	for _, s := range r.byToken {
		if s.ID == id {
			s.UpdateLastUsed()
		}
	}
	return nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	for _, s := range r.byToken {
		if s.ID == id {
			s.Revoke()
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error {
	for _, s := range r.byToken {
		if s.UserID == userID {
			s.Revoke()
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context, before time.Time) error {
	for token, s := range r.byToken {
		if s.ExpiresAt.Before(before) {
			delete(r.byToken, token)
		}
	}
	return nil
}

func newTestService(t *testing.T) (Service, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	jwtManager := jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	return NewService(userRepo, sessionRepo, jwtManager, nil), userRepo, sessionRepo
}

func TestLoginCreatesUserOnFirstUse(t *testing.T) {
	svc, userRepo, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), "Jane.Doe@Example.com", "anything")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.User == nil {
		t.Fatal("expected user in response")
	}
	if resp.User.Email != "jane.doe@example.com" {
		t.Fatalf("expected normalized email, got %q", resp.User.Email)
	}
	if resp.User.Name != "Jane Doe" {
		t.Fatalf("expected derived display name, got %q", resp.User.Name)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected token pair")
	}

	stored, _ := userRepo.FindByEmail(context.Background(), "jane.doe@example.com")
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.LastLoginAt == nil {
		t.Fatal("expected last login to be recorded")
	}
}

func TestLoginReusesExistingUser(t *testing.T) {
	svc, userRepo, _ := newTestService(t)

	first, err := svc.Login(context.Background(), "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	second, err := svc.Login(context.Background(), "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Fatalf("expected same user across logins, got %s and %s", first.User.ID, second.User.ID)
	}
	if len(userRepo.byID) != 1 {
		t.Fatalf("expected 1 user, got %d", len(userRepo.byID))
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Login(context.Background(), "", "pw"); err == nil {
		t.Fatal("expected error for empty email")
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	svc, userRepo, _ := newTestService(t)

	if _, err := svc.Login(context.Background(), "not-an-address", "pw"); err == nil {
		t.Fatal("expected error for email without a domain")
	}
	if len(userRepo.byEmail) != 0 {
		t.Fatalf("no user should be created, got %d", len(userRepo.byEmail))
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, _, sessionRepo := newTestService(t)

	login, err := svc.Login(context.Background(), "carol@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatal("expected refresh token to rotate")
	}

	old := sessionRepo.byToken[login.RefreshToken]
	if old == nil || old.RevokedAt == nil {
		t.Fatal("expected old session to be revoked")
	}

	// Revoked sessions must not refresh again
	if _, err := svc.Refresh(context.Background(), login.RefreshToken); err == nil {
		t.Fatal("expected error refreshing a revoked session")
	}
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessionRepo := newTestService(t)

	login, err := svc.Login(context.Background(), "dave@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sessionRepo.byToken[login.RefreshToken].RevokedAt == nil {
		t.Fatal("expected session to be revoked")
	}

	if err := svc.Logout(context.Background(), "unknown-token"); err == nil {
		t.Fatal("expected error for unknown refresh token")
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	login, err := svc.Login(context.Background(), "erin@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.GetCurrentUser(context.Background(), login.User.ID)
	if err != nil {
		t.Fatalf("get current user failed: %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Fatalf("unexpected email %q", user.Email)
	}

	if _, err := svc.GetCurrentUser(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestDisplayNameFromEmail(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"bob@example.com", "Bob"},
		{"mary_ann-smith@example.com", "Mary Ann Smith"},
		{"x@example.com", "X"},
	}
	for _, tc := range cases {
		if got := displayNameFromEmail(tc.email); got != tc.want {
			t.Errorf("displayNameFromEmail(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}
