package service

import (
	"context"
	"fmt"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
)

type ProgressService struct {
	progressRepo repository.ProgressRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

type UpdateProgressRequest struct {
	UserID     string `json:"userId"`
	QuestionID string `json:"questionId"`
	IsSolved   bool   `json:"isSolved"`
}

func (s *ProgressService) ListByUser(ctx context.Context, userID string) ([]model.ProgressRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", common.ErrValidation)
	}
	return s.progressRepo.ListByUser(ctx, userID)
}

// Update upserts the (user, question) progress row: a repeated report replaces
// the prior flag and timestamp.
func (s *ProgressService) Update(ctx context.Context, req UpdateProgressRequest) error {
	if req.UserID == "" || req.QuestionID == "" {
		return fmt.Errorf("userId and questionId are required: %w", common.ErrValidation)
	}

	// Surface a clean 404 rather than a foreign-key failure.
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return err
	}
	if _, err := s.questionRepo.FindByID(ctx, req.QuestionID); err != nil {
		return err
	}

	now := time.Now()
	return s.progressRepo.Upsert(ctx, &model.ProgressRecord{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		IsSolved:   req.IsSolved,
		SolvedAt:   &now,
	})
}
