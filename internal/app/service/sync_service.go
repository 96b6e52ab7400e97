package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"dsa_tracker/internal/app/reconcile"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
)

// JudgeClient fetches a user's solved-problem payload from an external judge
// platform, handling endpoint fallback and retries internally.
type JudgeClient interface {
	FetchGFGProfile(ctx context.Context, username string) ([]byte, error)
	FetchLeetCodeProfile(ctx context.Context, username string) ([]byte, error)
}

type SyncService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
	judge        JudgeClient

	// Bulk sync tuning: users are processed in batches of BatchSize run
	// concurrently, with BatchDelay between batches to respect upstream
	// rate limits.
	BatchSize  int
	BatchDelay time.Duration
}

func NewSyncService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	progressRepo repository.ProgressRepository,
	judge JudgeClient,
) *SyncService {
	return &SyncService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		judge:        judge,
		BatchSize:    5,
		BatchDelay:   2 * time.Second,
	}
}

// SyncGFG reconciles one user's GeeksforGeeks progress. MissingUsername is
// terminal and reported before any network call.
func (s *SyncService) SyncGFG(ctx context.Context, userID string) (*model.SyncResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	username := derefString(user.GeeksForGeeksUsername)
	if username == "" {
		return nil, fmt.Errorf("add your GeeksforGeeks username in your profile first: %w", common.ErrMissingUsername)
	}

	questions, err := s.questionsForPlatform(ctx, model.PlatformGeeksForGeeks)
	if err != nil {
		return nil, err
	}

	payload, err := s.judge.FetchGFGProfile(ctx, username)
	if err != nil {
		return nil, err // common.ErrUpstreamUnavailable after exhausted retries
	}

	report, err := reconcile.GFG(payload, questions)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrUpstreamUnavailable)
	}

	return s.applyReport(ctx, userID, model.PlatformGeeksForGeeks, questions, report)
}

// SyncLeetCode reconciles one user's LeetCode progress.
func (s *SyncService) SyncLeetCode(ctx context.Context, userID string) (*model.SyncResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	username := derefString(user.LeetCodeUsername)
	if username == "" {
		return nil, fmt.Errorf("add your LeetCode username in your profile first: %w", common.ErrMissingUsername)
	}

	questions, err := s.questionsForPlatform(ctx, model.PlatformLeetCode)
	if err != nil {
		return nil, err
	}

	payload, err := s.judge.FetchLeetCodeProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	report, err := reconcile.LeetCode(payload, questions)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrUpstreamUnavailable)
	}

	return s.applyReport(ctx, userID, model.PlatformLeetCode, questions, report)
}

// SyncAll runs both platforms for one user. A platform failing never aborts
// the other; each failure is captured in its own result entry.
func (s *SyncService) SyncAll(ctx context.Context, userID string) (map[model.Platform]*model.SyncResult, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	results := make(map[model.Platform]*model.SyncResult, 2)

	if gfg, err := s.SyncGFG(ctx, userID); err != nil {
		results[model.PlatformGeeksForGeeks] = failedResult(model.PlatformGeeksForGeeks, err)
	} else {
		results[model.PlatformGeeksForGeeks] = gfg
	}

	if lc, err := s.SyncLeetCode(ctx, userID); err != nil {
		results[model.PlatformLeetCode] = failedResult(model.PlatformLeetCode, err)
	} else {
		results[model.PlatformLeetCode] = lc
	}

	return results, nil
}

// SyncAllUsers syncs every role=user account. Per-user failures are collected
// into the result list rather than aborting the run.
func (s *SyncService) SyncAllUsers(ctx context.Context) ([]model.UserSyncResult, error) {
	users, err := s.userRepo.ListByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, err
	}

	results := make([]model.UserSyncResult, 0, len(users))
	var mu sync.Mutex

	for start := 0; start < len(users); start += s.BatchSize {
		end := start + s.BatchSize
		if end > len(users) {
			end = len(users)
		}
		batch := users[start:end]

		var wg sync.WaitGroup
		for _, user := range batch {
			wg.Add(1)
			go func(user model.User) {
				defer wg.Done()
				userResults, err := s.SyncAll(ctx, user.ID)
				if err != nil {
					log.Printf("ERROR: Bulk sync failed for user %s: %v", user.Username, err)
					userResults = map[model.Platform]*model.SyncResult{}
				}
				mu.Lock()
				results = append(results, model.UserSyncResult{
					UserID:   user.ID,
					Username: user.Username,
					Results:  userResults,
				})
				mu.Unlock()
			}(user)
		}
		wg.Wait()

		if end < len(users) {
			time.Sleep(s.BatchDelay)
		}
	}

	return results, nil
}

// applyReport upserts a solved ProgressRecord for every matched question.
// Unmatched questions are never downgraded.
func (s *SyncService) applyReport(ctx context.Context, userID string, platform model.Platform, questions []model.Question, report *reconcile.Report) (*model.SyncResult, error) {
	now := time.Now()
	updated := 0
	for _, questionID := range report.MatchedQuestionIDs {
		solvedAt := now
		record := &model.ProgressRecord{
			UserID:     userID,
			QuestionID: questionID,
			IsSolved:   true,
			SolvedAt:   &solvedAt,
		}
		if err := s.progressRepo.Upsert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to upsert progress for question %s: %w", questionID, err)
		}
		updated++
	}

	return &model.SyncResult{
		Success:  true,
		Platform: platform,
		Message:  report.Message,
		Stats: model.SyncStats{
			TotalQuestions:   len(questions),
			SolvedQuestions:  len(report.MatchedQuestionIDs),
			UpdatedQuestions: updated,
		},
	}, nil
}

func (s *SyncService) questionsForPlatform(ctx context.Context, platform model.Platform) ([]model.Question, error) {
	all, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(all))
	for _, q := range all {
		if q.Platform() == platform {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func failedResult(platform model.Platform, err error) *model.SyncResult {
	return &model.SyncResult{
		Success:  false,
		Platform: platform,
		Error:    err.Error(),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
