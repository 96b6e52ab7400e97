package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const leaderboardLimit = 50

type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	cache           *redis.Client // nil disables caching
	cacheTTL        time.Duration
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, cache *redis.Client, cacheTTL time.Duration) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, period model.LeaderboardPeriod) ([]model.LeaderboardEntry, error) {
	if period == "" {
		period = model.PeriodAllTime
	}
	if !period.Valid() {
		return nil, fmt.Errorf("period must be daily, weekly, or all-time: %w", common.ErrValidation)
	}

	cacheKey := "leaderboard:" + string(period)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var entries []model.LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.leaderboardRepo.TopUsers(ctx, period, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by solved count desc, username asc; rank is the
	// 1-based position.
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				log.Printf("WARN: Failed to cache leaderboard for period %s: %v", period, err)
			}
		}
	}

	return entries, nil
}
