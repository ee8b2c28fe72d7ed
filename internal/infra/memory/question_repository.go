package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizhub/internal/domain"
)

// QuestionRepository is an in-memory implementation of question.Repository,
// used by tests and the no-database demo mode.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[string]domain.Question
	rnd       *rand.Rand
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions: make(map[string]domain.Question),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) Save(_ context.Context, q domain.Question) (domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	r.questions[q.ID] = q
	return q, nil
}

func (r *QuestionRepository) ByCategory(_ context.Context, category string) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Question, 0)
	for _, q := range r.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuestionRepository) RandomIDs(_ context.Context, category string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}

	// write lock: the shuffle mutates the shared rand source
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0)
	for _, q := range r.questions {
		if q.Category == category {
			ids = append(ids, q.ID)
		}
	}
	r.rnd.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if count < len(ids) {
		ids = ids[:count]
	}
	return ids, nil
}

func (r *QuestionRepository) ByIDs(_ context.Context, ids []string) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}
