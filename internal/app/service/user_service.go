package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserRequest struct {
	Username              string  `json:"username"`
	Password              string  `json:"password"`
	Role                  string  `json:"role"`
	FullName              string  `json:"fullName"`
	LeetCodeUsername      *string `json:"leetcodeUsername,omitempty"`
	GeeksForGeeksUsername *string `json:"geeksforgeeksUsername,omitempty"`
}

type UpdateProfileRequest struct {
	FullName              string  `json:"fullName"`
	LeetCodeUsername      *string `json:"leetcodeUsername"`
	GeeksForGeeksUsername *string `json:"geeksforgeeksUsername"`
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// Create is the admin path for provisioning accounts, including other admins.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, fmt.Errorf("role must be admin or user: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:                    uuid.NewString(),
		Username:              req.Username,
		HashedPassword:        hashedPassword,
		Role:                  role,
		FullName:              req.FullName,
		LeetCodeUsername:      req.LeetCodeUsername,
		GeeksForGeeksUsername: req.GeeksForGeeksUsername,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // common.ErrConflict on duplicate username
	}

	user.HashedPassword = ""
	return user, nil
}

// UpdateProfile edits the owner-editable fields only; username and role are
// immutable here.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FullName = req.FullName
	user.LeetCodeUsername = req.LeetCodeUsername
	user.GeeksForGeeksUsername = req.GeeksForGeeksUsername

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}
