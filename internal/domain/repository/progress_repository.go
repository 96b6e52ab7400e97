package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dsa_tracker/internal/domain/model"
)

type ProgressRepository interface {
	Upsert(ctx context.Context, record *model.ProgressRecord) error
	ListByUser(ctx context.Context, userID string) ([]model.ProgressRecord, error)
}

type pgProgressRepository struct {
	db *sql.DB
}

func NewPgProgressRepository(db *sql.DB) ProgressRepository {
	return &pgProgressRepository{db: db}
}

// Upsert relies on the (user_id, question_id) primary key: a repeated report
// replaces the prior flag and timestamp, never appends. Idempotent, so
// concurrent syncs converge with last write wins on solved_at.
func (r *pgProgressRepository) Upsert(ctx context.Context, record *model.ProgressRecord) error {
	query := `INSERT INTO user_progress (user_id, question_id, is_solved, solved_at, notes)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (user_id, question_id)
	          DO UPDATE SET is_solved = $3, solved_at = $4`
	var solvedAt interface{}
	if record.SolvedAt != nil {
		solvedAt = *record.SolvedAt
	}
	_, err := r.db.ExecContext(ctx, query,
		record.UserID, record.QuestionID, record.IsSolved, solvedAt, record.Notes,
	)
	if err != nil {
		return fmt.Errorf("pgProgressRepository.Upsert: %w", err)
	}
	return nil
}

func (r *pgProgressRepository) ListByUser(ctx context.Context, userID string) ([]model.ProgressRecord, error) {
	query := `SELECT user_id, question_id, is_solved, solved_at, notes
	          FROM user_progress WHERE user_id = $1`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	records := []model.ProgressRecord{}
	for rows.Next() {
		var record model.ProgressRecord
		var solvedAt sql.NullTime
		if err := rows.Scan(&record.UserID, &record.QuestionID, &record.IsSolved, &solvedAt, &record.Notes); err != nil {
			return nil, fmt.Errorf("pgProgressRepository.ListByUser: %w", err)
		}
		if solvedAt.Valid {
			t := solvedAt.Time
			record.SolvedAt = &t
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
