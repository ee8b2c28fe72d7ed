package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"quizhub/internal/domain"
)

// QuizRepository is an in-memory implementation of quiz.Repository.
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[string]domain.Quiz
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{quizzes: make(map[string]domain.Quiz)}
}

func (r *QuizRepository) Save(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	// copy the ID slice so later caller mutations cannot reach the store
	ids := make([]string, len(quiz.QuestionIDs))
	copy(ids, quiz.QuestionIDs)
	quiz.QuestionIDs = ids
	r.quizzes[quiz.ID] = quiz
	return quiz, nil
}

func (r *QuizRepository) ByID(_ context.Context, id string) (domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, nil
}
