package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	ListFiltered(ctx context.Context, qType model.QuestionType, difficulty model.QuestionDifficulty) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

func (r *pgQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	query := `INSERT INTO questions (id, question_name, question_link, type, difficulty)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, q.ID, q.Name, q.Link, q.Type, q.Difficulty)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	query := `SELECT id, question_name, question_link, type, difficulty, created_at
	          FROM questions WHERE id = $1`
	q := &model.Question{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.Name, &q.Link, &q.Type, &q.Difficulty, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgQuestionRepository.FindByID: %w", err)
	}
	return q, nil
}

func (r *pgQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	query := `SELECT id, question_name, question_link, type, difficulty, created_at
	          FROM questions ORDER BY created_at DESC`
	return r.scanQuestions(ctx, query)
}

func (r *pgQuestionRepository) ListFiltered(ctx context.Context, qType model.QuestionType, difficulty model.QuestionDifficulty) ([]model.Question, error) {
	query := `SELECT id, question_name, question_link, type, difficulty, created_at
	          FROM questions WHERE 1=1`
	var args []interface{}
	argPos := 0

	if qType != "" {
		argPos++
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, qType)
	}
	if difficulty != "" {
		argPos++
		query += fmt.Sprintf(" AND difficulty = $%d", argPos)
		args = append(args, difficulty)
	}
	query += " ORDER BY created_at DESC"

	return r.scanQuestions(ctx, query, args...)
}

func (r *pgQuestionRepository) scanQuestions(ctx context.Context, query string, args ...interface{}) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.scanQuestions: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Name, &q.Link, &q.Type, &q.Difficulty, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.scanQuestions: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *pgQuestionRepository) Update(ctx context.Context, q *model.Question) error {
	query := `UPDATE questions
	          SET question_name = $1, question_link = $2, type = $3, difficulty = $4
	          WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, q.Name, q.Link, q.Type, q.Difficulty, q.ID)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgQuestionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgQuestionRepository.Count: %w", err)
	}
	return count, nil
}
