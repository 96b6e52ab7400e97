package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/platform/config"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *model.User `json:"user"`
	ExpiresIn    int         `json:"expiresIn"` // seconds until the access token expires
}

type RefreshResponse struct {
	AccessToken string      `json:"accessToken"`
	User        *model.User `json:"user"`
}

// invalidCredentials is shared by the unknown-username and wrong-password
// paths so the two are indistinguishable to a caller probing for accounts.
func invalidCredentials() error {
	return fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           model.RoleUser, // Self-registration never grants admin
		FullName:       req.FullName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on duplicate username
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, invalidCredentials()
	}

	accessToken, err := security.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshTTL := config.AppConfig.RefreshTokenTTL
	if req.RememberMe {
		refreshTTL = config.AppConfig.RememberMeTTL
	}
	expiresAt := time.Now().Add(refreshTTL)

	refreshToken, err := security.GenerateRefreshToken(user.ID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// One active refresh token per user: a new login supersedes the old row.
	if err := s.tokenRepo.Save(ctx, &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	user.HashedPassword = ""
	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		ExpiresIn:    int(config.AppConfig.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required: %w", common.ErrValidation)
	}

	userID, err := security.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", common.ErrUnauthorized)
	}

	stored, err := s.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("refresh token not recognized: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if stored.Expired(time.Now()) {
		// Expired rows are dead weight, drop them as a side effect.
		if delErr := s.tokenRepo.DeleteByToken(ctx, refreshToken); delErr != nil {
			return nil, fmt.Errorf("failed to delete expired refresh token: %w", delErr)
		}
		return nil, fmt.Errorf("refresh token expired: %w", common.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for refresh: %w", err)
	}

	accessToken, err := security.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	user.HashedPassword = ""
	return &RefreshResponse{AccessToken: accessToken, User: user}, nil
}

// Logout deletes the stored refresh token. Idempotent: logging out an already
// logged-out token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenRepo.DeleteByToken(ctx, refreshToken)
}
