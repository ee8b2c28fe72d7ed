package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"quizhub/internal/domain"
)

// QuestionStore is the Postgres implementation of question.Repository.
type QuestionStore struct {
	pool *pgxpool.Pool
}

func NewQuestionStore(pool *pgxpool.Pool) *QuestionStore {
	return &QuestionStore{pool: pool}
}

func (s *QuestionStore) Save(ctx context.Context, q domain.Question) (domain.Question, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO questions (id, title, option1, option2, option3, option4, answer, difficulty, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, q.ID, q.Title, q.Option1, q.Option2, q.Option3, q.Option4, q.Answer, q.Difficulty, q.Category)
	if err != nil {
		return domain.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (s *QuestionStore) ByCategory(ctx context.Context, category string) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, option1, option2, option3, option4, answer, difficulty, category
		FROM questions
		WHERE category = $1
	`, category)
	if err != nil {
		return nil, fmt.Errorf("query by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *QuestionStore) RandomIDs(ctx context.Context, category string, count int) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id FROM questions
		WHERE category = $1
		ORDER BY random()
		LIMIT $2
	`, category, count)
	if err != nil {
		return nil, fmt.Errorf("query random ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, count)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *QuestionStore) ByIDs(ctx context.Context, ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, option1, option2, option3, option4, answer, difficulty, category
		FROM questions
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("query by ids: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanQuestions(rows rowScanner) ([]domain.Question, error) {
	out := make([]domain.Question, 0)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Option1, &q.Option2, &q.Option3, &q.Option4,
			&q.Answer, &q.Difficulty, &q.Category); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
