package questionclient

import (
	"context"

	"quizhub/internal/domain"
	"quizhub/internal/question"
)

// Local adapts a question.Service directly, bypassing HTTP. Used when both
// services run in one process (demo mode) and by tests.
type Local struct {
	svc *question.Service
}

func NewLocal(svc *question.Service) *Local {
	return &Local{svc: svc}
}

func (l *Local) RandomIDs(ctx context.Context, category string, count int) ([]string, error) {
	return l.svc.RandomIDs(ctx, category, count)
}

func (l *Local) Questions(ctx context.Context, ids []string) ([]domain.QuestionWrapper, error) {
	return l.svc.Wrappers(ctx, ids)
}

func (l *Local) Score(ctx context.Context, responses []domain.Response) (int, error) {
	return l.svc.Score(ctx, responses)
}
