package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dsa_tracker/internal/domain/model"
)

type LeaderboardRepository interface {
	// TopUsers returns role=user entries ordered by solved count desc,
	// username asc, capped at limit. Rank is filled in by the service.
	TopUsers(ctx context.Context, period model.LeaderboardPeriod, limit int) ([]model.LeaderboardEntry, error)
}

type pgLeaderboardRepository struct {
	db *sql.DB
}

func NewPgLeaderboardRepository(db *sql.DB) LeaderboardRepository {
	return &pgLeaderboardRepository{db: db}
}

func (r *pgLeaderboardRepository) TopUsers(ctx context.Context, period model.LeaderboardPeriod, limit int) ([]model.LeaderboardEntry, error) {
	query := `
        SELECT
            u.id,
            u.username,
            COALESCE(u.full_name, '') AS full_name,
            COUNT(up.question_id) AS solved_count,
            COALESCE(ROUND(
                (COUNT(up.question_id)::numeric /
                 NULLIF((SELECT COUNT(*) FROM questions), 0) * 100), 2
            ), 0)::float8 AS success_rate
        FROM users u
        LEFT JOIN user_progress up ON u.id = up.user_id AND up.is_solved = true`

	switch period {
	case model.PeriodDaily:
		query += ` AND up.solved_at >= CURRENT_DATE`
	case model.PeriodWeekly:
		query += ` AND up.solved_at >= CURRENT_DATE - INTERVAL '7 days'`
	}
	// all-time: no additional filter

	query += `
        WHERE u.role = 'user'
        GROUP BY u.id, u.username, u.full_name
        ORDER BY solved_count DESC, u.username ASC
        LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgLeaderboardRepository.TopUsers: %w", err)
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var entry model.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Username, &entry.FullName, &entry.SolvedCount, &entry.SuccessRate); err != nil {
			return nil, fmt.Errorf("pgLeaderboardRepository.TopUsers: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
