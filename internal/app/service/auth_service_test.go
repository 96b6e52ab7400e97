package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/domain/model"

	"github.com/google/uuid"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()
	setupTestConfig()
	security.InitJWT()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	return NewAuthService(userRepo, tokenRepo), userRepo, tokenRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *model.User {
	t.Helper()
	hashed, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &model.User{
		ID:             uuid.NewString(),
		Username:       username,
		HashedPassword: hashed,
		Role:           model.RoleUser,
		FullName:       username,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthFixture(t)
	seedUser(t, userRepo, "alice", "secret123")

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User.HashedPassword != "" {
		t.Error("password hash leaked in response")
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if _, err := tokenRepo.FindByToken(context.Background(), resp.RefreshToken); err != nil {
		t.Errorf("refresh token was not persisted: %v", err)
	}
}

func TestLoginIdenticalErrorsForUnknownUserAndWrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alice", "secret123")

	_, errUnknown := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "whatever"})
	_, errWrongPw := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("expected both logins to fail")
	}
	if !errors.Is(errUnknown, common.ErrUnauthorized) || !errors.Is(errWrongPw, common.ErrUnauthorized) {
		t.Error("expected ErrUnauthorized for both failure modes")
	}
	// Identical messages prevent user enumeration.
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLoginSupersedesPreviousRefreshToken(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthFixture(t)
	seedUser(t, userRepo, "alice", "secret123")

	first, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	// Token contents embed iat; a later login must replace the stored row
	// regardless of the token string.
	time.Sleep(1100 * time.Millisecond)
	second, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatal("expected distinct refresh tokens across logins")
	}
	if _, err := tokenRepo.FindByToken(context.Background(), first.RefreshToken); !errors.Is(err, common.ErrNotFound) {
		t.Error("first refresh token should have been superseded")
	}
}

func TestRefreshHappyPath(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alice", "secret123")

	login, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected a new access token")
	}
	if resp.User.Username != "alice" {
		t.Errorf("refresh user = %q, want alice", resp.User.Username)
	}
}

func TestRefreshRejectsMalformedToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	// An access token is well-formed but the wrong type.
	svc, userRepo, _ := newAuthFixture(t)
	user := seedUser(t, userRepo, "alice", "secret123")

	accessToken, err := security.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), accessToken); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for wrong token type, got %v", err)
	}
}

func TestRefreshUnknownStoredToken(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	user := seedUser(t, userRepo, "alice", "secret123")

	// Valid refresh JWT that was never persisted (e.g. already logged out).
	token, err := security.GenerateRefreshToken(user.ID, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), token); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRefreshExpiredTokenIsDeleted(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthFixture(t)
	user := seedUser(t, userRepo, "alice", "secret123")

	expiredAt := time.Now().Add(-time.Hour)
	token, err := security.GenerateRefreshToken(user.ID, expiredAt)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if err := tokenRepo.Save(context.Background(), &model.RefreshToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiredAt,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), token); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
	// Expired row must be gone.
	if _, err := tokenRepo.FindByToken(context.Background(), token); !errors.Is(err, common.ErrNotFound) {
		t.Error("expired refresh token was not deleted")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "alice", "secret123")

	login, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Errorf("second logout should succeed, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "pw", FullName: "Alice"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterRequest{Username: "alice", Password: "pw2", FullName: "Other Alice"})
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), RegisterRequest{Username: "mallory", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	stored, err := userRepo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Role != model.RoleUser {
		t.Errorf("role = %q, want %q", stored.Role, model.RoleUser)
	}
}
