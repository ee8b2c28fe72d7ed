package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"quizhub/internal/domain"
)

func TestQuizRepositorySaveAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewQuizRepository()

	saved, err := repo.Save(ctx, domain.Quiz{Title: "t", QuestionIDs: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected assigned ID")
	}

	got, err := repo.ByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if !reflect.DeepEqual(got.QuestionIDs, []string{"a", "b"}) {
		t.Fatalf("unexpected ids: %v", got.QuestionIDs)
	}
}

func TestQuizRepositoryNotFound(t *testing.T) {
	repo := NewQuizRepository()
	if _, err := repo.ByID(context.Background(), "nope"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
