package service

import (
	"context"
	"fmt"
	"strings"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type QuestionRequest struct {
	QuestionName string                   `json:"questionName"`
	QuestionLink string                   `json:"questionLink"`
	Type         model.QuestionType       `json:"type"`
	Difficulty   model.QuestionDifficulty `json:"difficulty"`
}

// validate returns a single ErrValidation listing every missing or invalid
// field, so the client can fix them all at once.
func (req *QuestionRequest) validate() error {
	var problems []string
	if req.QuestionName == "" {
		problems = append(problems, "questionName is required")
	}
	if req.QuestionLink == "" {
		problems = append(problems, "questionLink is required")
	}
	if req.Type == "" {
		problems = append(problems, "type is required")
	} else if !req.Type.Valid() {
		problems = append(problems, "type must be either homework or classwork")
	}
	if req.Difficulty == "" {
		problems = append(problems, "difficulty is required")
	} else if !req.Difficulty.Valid() {
		problems = append(problems, "difficulty must be easy, medium, or hard")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), common.ErrValidation)
	}
	return nil
}

func (s *QuestionService) Create(ctx context.Context, req QuestionRequest) (*model.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	question := &model.Question{
		ID:         uuid.NewString(),
		Name:       req.QuestionName,
		Link:       req.QuestionLink,
		Type:       req.Type,
		Difficulty: req.Difficulty,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	return s.questionRepo.FindByID(ctx, id)
}

func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}

func (s *QuestionService) ListFiltered(ctx context.Context, qType model.QuestionType, difficulty model.QuestionDifficulty) ([]model.Question, error) {
	if qType != "" && !qType.Valid() {
		return nil, fmt.Errorf("type must be either homework or classwork: %w", common.ErrValidation)
	}
	if difficulty != "" && !difficulty.Valid() {
		return nil, fmt.Errorf("difficulty must be easy, medium, or hard: %w", common.ErrValidation)
	}
	return s.questionRepo.ListFiltered(ctx, qType, difficulty)
}

func (s *QuestionService) Update(ctx context.Context, id string, req QuestionRequest) (*model.Question, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	question := &model.Question{
		ID:         id,
		Name:       req.QuestionName,
		Link:       req.QuestionLink,
		Type:       req.Type,
		Difficulty: req.Difficulty,
	}
	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err // common.ErrNotFound when the id does not exist
	}
	return question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
