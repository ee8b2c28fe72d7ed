package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quizhub/internal/domain"
)

// QuizStore is the Postgres implementation of quiz.Repository. A quiz spans
// two tables (quizzes plus the ordered quiz_questions child rows), so the
// write runs in a single transaction.
type QuizStore struct {
	pool *pgxpool.Pool
}

func NewQuizStore(pool *pgxpool.Pool) *QuizStore {
	return &QuizStore{pool: pool}
}

func (s *QuizStore) Save(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `INSERT INTO quizzes (id, title) VALUES ($1, $2)`, quiz.ID, quiz.Title); err != nil {
		return domain.Quiz{}, fmt.Errorf("insert quiz: %w", err)
	}
	for i, questionID := range quiz.QuestionIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO quiz_questions (quiz_id, position, question_id) VALUES ($1, $2, $3)
		`, quiz.ID, i, questionID); err != nil {
			return domain.Quiz{}, fmt.Errorf("insert quiz question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Quiz{}, fmt.Errorf("commit: %w", err)
	}
	return quiz, nil
}

func (s *QuizStore) ByID(ctx context.Context, id string) (domain.Quiz, error) {
	var quiz domain.Quiz
	err := s.pool.QueryRow(ctx, `SELECT id, title FROM quizzes WHERE id = $1`, id).
		Scan(&quiz.ID, &quiz.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("query quiz: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT question_id FROM quiz_questions WHERE quiz_id = $1 ORDER BY position
	`, id)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("query quiz questions: %w", err)
	}
	defer rows.Close()

	quiz.QuestionIDs = make([]string, 0)
	for rows.Next() {
		var questionID string
		if err := rows.Scan(&questionID); err != nil {
			return domain.Quiz{}, err
		}
		quiz.QuestionIDs = append(quiz.QuestionIDs, questionID)
	}
	return quiz, rows.Err()
}
