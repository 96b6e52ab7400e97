package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/config"
)

// Shared in-memory fakes for the repository interfaces.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return fmt.Errorf("duplicate username: %w", common.ErrConflict)
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[user.ID]
	if !ok {
		return common.ErrNotFound
	}
	existing.FullName = user.FullName
	existing.LeetCodeUsername = user.LeetCodeUsername
	existing.GeeksForGeeksUsername = user.GeeksForGeeksUsername
	return nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []model.User
	for _, user := range f.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id string) (*model.Question, error) {
	for _, q := range f.questions {
		if q.ID == id {
			copied := q
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeQuestionRepo) List(_ context.Context) ([]model.Question, error) {
	return append([]model.Question{}, f.questions...), nil
}

func (f *fakeQuestionRepo) ListFiltered(_ context.Context, qType model.QuestionType, difficulty model.QuestionDifficulty) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if qType != "" && q.Type != qType {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(_ context.Context, q *model.Question) error {
	for i := range f.questions {
		if f.questions[i].ID == q.ID {
			f.questions[i] = *q
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeQuestionRepo) Count(_ context.Context) (int, error) {
	return len(f.questions), nil
}

type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[string]model.ProgressRecord // keyed by userID|questionID
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]model.ProgressRecord{}}
}

func progressKey(userID, questionID string) string {
	return userID + "|" + questionID
}

func (f *fakeProgressRepo) Upsert(_ context.Context, record *model.ProgressRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[progressKey(record.UserID, record.QuestionID)] = *record
	return nil
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID string) ([]model.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ProgressRecord
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*model.RefreshToken // keyed by token string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*model.RefreshToken{}}
}

func (f *fakeTokenRepo) Save(_ context.Context, token *model.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// One token per user: drop any previous row for the same user.
	for key, existing := range f.tokens {
		if existing.UserID == token.UserID {
			delete(f.tokens, key)
		}
	}
	copied := *token
	f.tokens[token.Token] = &copied
	return nil
}

func (f *fakeTokenRepo) FindByToken(_ context.Context, tokenString string) (*model.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, ok := f.tokens[tokenString]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokenRepo) DeleteByToken(_ context.Context, tokenString string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, tokenString)
	return nil
}

type fakeLeaderboardRepo struct {
	entries   []model.LeaderboardEntry
	gotPeriod model.LeaderboardPeriod
}

func (f *fakeLeaderboardRepo) TopUsers(_ context.Context, period model.LeaderboardPeriod, limit int) ([]model.LeaderboardEntry, error) {
	f.gotPeriod = period
	if len(f.entries) > limit {
		return append([]model.LeaderboardEntry{}, f.entries[:limit]...), nil
	}
	return append([]model.LeaderboardEntry{}, f.entries...), nil
}

type fakeJudge struct {
	mu            sync.Mutex
	gfgPayload    []byte
	gfgErr        error
	lcPayload     []byte
	lcErr         error
	gfgCalls      int
	leetcodeCalls int
}

func (f *fakeJudge) FetchGFGProfile(_ context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gfgCalls++
	return f.gfgPayload, f.gfgErr
}

func (f *fakeJudge) FetchLeetCodeProfile(_ context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leetcodeCalls++
	return f.lcPayload, f.lcErr
}

// setupTestConfig wires the package-level config the services read; callers
// needing token issuance also run security.InitJWT.
func setupTestConfig() {
	config.AppConfig = &config.Config{
		JWTKey:          []byte("test-secret"),
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		RememberMeTTL:   30 * 24 * time.Hour,
	}
}

func strPtr(s string) *string {
	return &s
}
