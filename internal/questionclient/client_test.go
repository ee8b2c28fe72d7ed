package questionclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"quizhub/internal/domain"
)

func TestRandomIDsRequestShape(t *testing.T) {
	var gotCategory, gotCount string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/question/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotCategory = r.URL.Query().Get("categoryName")
		gotCount = r.URL.Query().Get("numQuestion")
		_ = json.NewEncoder(w).Encode([]string{"q1", "q2"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ids, err := client.RandomIDs(context.Background(), "Java", 2)
	if err != nil {
		t.Fatalf("random ids: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"q1", "q2"}) {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if gotCategory != "Java" || gotCount != "2" {
		t.Fatalf("unexpected query: category=%q count=%q", gotCategory, gotCount)
	}
}

func TestQuestionsPostsIDList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/question/getQuestions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var ids []string
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			t.Errorf("decode ids: %v", err)
		}
		out := make([]domain.QuestionWrapper, 0, len(ids))
		for _, id := range ids {
			out = append(out, domain.QuestionWrapper{ID: id, Title: "t"})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	wrappers, err := client.Questions(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(wrappers) != 2 || wrappers[0].ID != "a" {
		t.Fatalf("unexpected wrappers: %+v", wrappers)
	}
}

func TestScoreDecodesInteger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/question/getScore" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(3)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	score, err := client.Score(context.Background(), []domain.Response{{QuestionID: "q1", Answer: "A"}})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 3 {
		t.Fatalf("expected 3, got %d", score)
	}
}

func TestErrorStatusBecomesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.RandomIDs(context.Background(), "Java", 2); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestUnreachableServiceFailsClosed(t *testing.T) {
	// A closed server: connection refused rather than a hang.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := New(NewStaticResolver(map[string]string{ServiceName: url}), 500*time.Millisecond)
	if _, err := client.RandomIDs(context.Background(), "Java", 2); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestUnknownServiceName(t *testing.T) {
	client := New(NewStaticResolver(nil), time.Second)
	if _, err := client.Score(context.Background(), nil); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func newTestClient(base string) *Client {
	return New(NewStaticResolver(map[string]string{ServiceName: base}), time.Second)
}
