package question

import (
	"context"
	"fmt"

	"quizhub/internal/domain"
)

// Repository abstracts how questions are stored (in-memory, Postgres).
type Repository interface {
	Save(ctx context.Context, q domain.Question) (domain.Question, error)
	ByCategory(ctx context.Context, category string) ([]domain.Question, error)
	RandomIDs(ctx context.Context, category string, count int) ([]string, error)
	ByIDs(ctx context.Context, ids []string) ([]domain.Question, error)
}

// Service contains the question-side use cases: authoring, category lookup,
// random selection for quiz assembly, and answer scoring.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new question. The stored copy, with its
// assigned ID, is returned.
func (s *Service) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	if err := validate(q); err != nil {
		return domain.Question{}, err
	}
	return s.repo.Save(ctx, q)
}

// ByCategory returns all questions whose category matches exactly.
// An empty category yields an empty result.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Question, error) {
	if category == "" {
		return []domain.Question{}, nil
	}
	return s.repo.ByCategory(ctx, category)
}

// RandomIDs picks count distinct question IDs at random from a category.
// If the category holds fewer than count questions, all of them are
// returned; this degraded result is not an error.
func (s *Service) RandomIDs(ctx context.Context, category string, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	return s.repo.RandomIDs(ctx, category, count)
}

// Wrappers resolves question bodies for the given IDs in their
// participant-facing, answer-redacted form. Unknown IDs are omitted.
func (s *Service) Wrappers(ctx context.Context, ids []string) ([]domain.QuestionWrapper, error) {
	questions, err := s.repo.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	wrappers := make([]domain.QuestionWrapper, 0, len(questions))
	for _, q := range questions {
		wrappers = append(wrappers, domain.Wrap(q))
	}
	return wrappers, nil
}

// Score counts how many responses match the stored correct answer exactly
// (case-sensitive). A response naming an unknown question contributes zero
// and does not fail the operation.
func (s *Service) Score(ctx context.Context, responses []domain.Response) (int, error) {
	if len(responses) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.QuestionID)
	}
	questions, err := s.repo.ByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.ID] = q.Answer
	}

	score := 0
	for _, r := range responses {
		if answer, ok := answers[r.QuestionID]; ok && answer == r.Answer {
			score++
		}
	}
	return score, nil
}

func validate(q domain.Question) error {
	required := []struct {
		name, value string
	}{
		{"questionTitle", q.Title},
		{"option1", q.Option1},
		{"option2", q.Option2},
		{"option3", q.Option3},
		{"option4", q.Option4},
		{"answer", q.Answer},
		{"difficultyLevel", q.Difficulty},
		{"category", q.Category},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}
