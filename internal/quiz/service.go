package quiz

import (
	"context"
	"fmt"

	"quizhub/internal/domain"
)

// Repository abstracts how quizzes are stored (in-memory, Postgres, with an
// optional Redis read-through in front).
type Repository interface {
	Save(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	ByID(ctx context.Context, id string) (domain.Quiz, error)
}

// QuestionDirectory is the question-service surface the orchestrator
// consumes: random selection, body retrieval, and scoring. The production
// implementation talks HTTP to the question service.
type QuestionDirectory interface {
	RandomIDs(ctx context.Context, category string, count int) ([]string, error)
	Questions(ctx context.Context, ids []string) ([]domain.QuestionWrapper, error)
	Score(ctx context.Context, responses []domain.Response) (int, error)
}

// Service sequences calls across the quiz store and the question service.
// It holds no state of its own; every operation is a fresh read or write.
type Service struct {
	quizzes   Repository
	questions QuestionDirectory
}

func NewService(quizzes Repository, questions QuestionDirectory) *Service {
	return &Service{quizzes: quizzes, questions: questions}
}

// Create draws a random question set for the category and persists a quiz
// referencing it. There is no transaction spanning the two stores: if the
// save fails after the draw, nothing was written and the caller retries.
func (s *Service) Create(ctx context.Context, category string, count int, title string) (domain.Quiz, error) {
	if count <= 0 {
		return domain.Quiz{}, fmt.Errorf("%w: numQuestions must be positive", domain.ErrValidation)
	}
	if title == "" {
		return domain.Quiz{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	ids, err := s.questions.RandomIDs(ctx, category, count)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("draw questions: %w", err)
	}

	quiz, err := s.quizzes.Save(ctx, domain.Quiz{Title: title, QuestionIDs: ids})
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("save quiz: %w", err)
	}
	return quiz, nil
}

// Questions returns the quiz's questions in their answer-redacted form.
// Question IDs that no longer resolve are omitted rather than failing the
// whole request; the quiz-to-question reference is soft.
func (s *Service) Questions(ctx context.Context, quizID string) ([]domain.QuestionWrapper, error) {
	quiz, err := s.quizzes.ByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.QuestionIDs) == 0 {
		return []domain.QuestionWrapper{}, nil
	}
	return s.questions.Questions(ctx, quiz.QuestionIDs)
}

// Submit scores a participant's responses against the quiz. Responses naming
// questions outside the quiz are dropped before scoring, so a valid question
// ID from elsewhere in the system cannot be replayed against an unrelated
// quiz. Scoring mutates nothing and may be repeated.
func (s *Service) Submit(ctx context.Context, quizID string, responses []domain.Response) (int, error) {
	quiz, err := s.quizzes.ByID(ctx, quizID)
	if err != nil {
		return 0, err
	}

	member := make(map[string]struct{}, len(quiz.QuestionIDs))
	for _, id := range quiz.QuestionIDs {
		member[id] = struct{}{}
	}
	contained := make([]domain.Response, 0, len(responses))
	for _, r := range responses {
		if _, ok := member[r.QuestionID]; ok {
			contained = append(contained, r)
		}
	}
	if len(contained) == 0 {
		return 0, nil
	}

	score, err := s.questions.Score(ctx, contained)
	if err != nil {
		return 0, fmt.Errorf("score responses: %w", err)
	}
	return score, nil
}
