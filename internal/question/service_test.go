package question_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quizhub/internal/domain"
	"quizhub/internal/infra/memory"
	"quizhub/internal/question"
)

func TestCreateRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	svc := question.NewService(memory.NewQuestionRepository())

	q := sampleQuestion("Java")
	q.Answer = ""
	if _, err := svc.Create(ctx, q); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	saved, err := svc.Create(ctx, sampleQuestion("Java"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected assigned ID")
	}
}

func TestByCategory(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t, map[string]int{"Java": 3, "Python": 2})

	questions, err := svc.ByCategory(ctx, "Java")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 Java questions, got %d", len(questions))
	}

	empty, err := svc.ByCategory(ctx, "")
	if err != nil {
		t.Fatalf("empty category should not error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %d", len(empty))
	}
}

func TestRandomIDsDrawsDistinctFromCategory(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuestionRepository()
	svc := question.NewService(repo)

	javaIDs := make(map[string]bool)
	for i := 0; i < 10; i++ {
		saved, err := svc.Create(ctx, sampleQuestion("Java"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		javaIDs[saved.ID] = true
	}
	if _, err := svc.Create(ctx, sampleQuestion("Python")); err != nil {
		t.Fatalf("create: %v", err)
	}

	ids, err := svc.RandomIDs(ctx, "Java", 5)
	if err != nil {
		t.Fatalf("random ids: %v", err)
	}
	if len(ids) != 5 {
		t.Fatalf("expected 5 ids, got %d", len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if !javaIDs[id] {
			t.Fatalf("id %s is not a Java question", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestRandomIDsDegradedWhenCategoryTooSmall(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t, map[string]int{"Java": 2})

	ids, err := svc.RandomIDs(ctx, "Java", 10)
	if err != nil {
		t.Fatalf("expected degraded result, got error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected all 2 available ids, got %d", len(ids))
	}
}

func TestRandomIDsNonPositiveCount(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t, map[string]int{"Java": 2})

	for _, count := range []int{0, -1} {
		ids, err := svc.RandomIDs(ctx, "Java", count)
		if err != nil {
			t.Fatalf("count %d: %v", count, err)
		}
		if len(ids) != 0 {
			t.Fatalf("count %d: expected empty, got %d", count, len(ids))
		}
	}
}

func TestWrappersOmitUnknownIDsAndAnswers(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuestionRepository()
	svc := question.NewService(repo)

	saved, err := svc.Create(ctx, sampleQuestion("Java"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	wrappers, err := svc.Wrappers(ctx, []string{saved.ID, "no-such-id"})
	if err != nil {
		t.Fatalf("wrappers: %v", err)
	}
	if len(wrappers) != 1 {
		t.Fatalf("expected unknown id omitted, got %d wrappers", len(wrappers))
	}

	raw, err := json.Marshal(wrappers)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "answer") {
		t.Fatalf("wrapper output leaks answer field: %s", raw)
	}
}

func TestScore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuestionRepository()
	svc := question.NewService(repo)

	q1 := sampleQuestion("Java")
	q1.Answer = "A"
	q1.Option1 = "A"
	saved1, _ := repo.Save(ctx, q1)

	q2 := sampleQuestion("Java")
	q2.Answer = "B"
	q2.Option2 = "B"
	saved2, _ := repo.Save(ctx, q2)

	score, err := svc.Score(ctx, []domain.Response{
		{QuestionID: saved1.ID, Answer: "A"},
		{QuestionID: saved2.ID, Answer: "X"},
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
}

func TestScoreUnknownQuestionContributesZero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuestionRepository()
	svc := question.NewService(repo)

	q := sampleQuestion("Java")
	q.Answer = "A"
	saved, _ := repo.Save(ctx, q)

	score, err := svc.Score(ctx, []domain.Response{
		{QuestionID: saved.ID, Answer: "A"},
		{QuestionID: "id-999", Answer: "A"},
	})
	if err != nil {
		t.Fatalf("unknown id must not fail scoring: %v", err)
	}
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
}

func TestScoreIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuestionRepository()
	svc := question.NewService(repo)

	q := sampleQuestion("Java")
	q.Answer = "Yes"
	saved, _ := repo.Save(ctx, q)

	score, err := svc.Score(ctx, []domain.Response{{QuestionID: saved.ID, Answer: "yes"}})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected case-sensitive mismatch, got score %d", score)
	}
}

func newSeededService(t *testing.T, categories map[string]int) *question.Service {
	t.Helper()
	svc := question.NewService(memory.NewQuestionRepository())
	for category, n := range categories {
		for i := 0; i < n; i++ {
			if _, err := svc.Create(context.Background(), sampleQuestion(category)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
	}
	return svc
}

func sampleQuestion(category string) domain.Question {
	return domain.Question{
		Title:      "Which option is correct?",
		Option1:    "first",
		Option2:    "second",
		Option3:    "third",
		Option4:    "fourth",
		Answer:     "second",
		Difficulty: "Easy",
		Category:   category,
	}
}
