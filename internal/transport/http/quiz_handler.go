package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"quizhub/internal/domain"
	"quizhub/internal/quiz"
)

// QuizHandler exposes the quiz orchestrator's REST surface.
type QuizHandler struct {
	svc *quiz.Service
	log *zap.Logger
}

func NewQuizHandler(svc *quiz.Service, log *zap.Logger) *QuizHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuizHandler{svc: svc, log: log}
}

func (h *QuizHandler) Register(r *mux.Router) {
	r.HandleFunc("/quiz/create", h.create).Methods(http.MethodPost)
	r.HandleFunc("/quiz/get/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/quiz/submit/{id}", h.submit).Methods(http.MethodPost)
}

type createQuizRequest struct {
	CategoryName string `json:"categoryName"`
	NumQuestion  int    `json:"numQuestion"`
	// numQuestions is accepted as an alias for numQuestion.
	NumQuestions int    `json:"numQuestions"`
	Title        string `json:"title"`
}

func (r createQuizRequest) count() int {
	if r.NumQuestion != 0 {
		return r.NumQuestion
	}
	return r.NumQuestions
}

func (h *QuizHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("create quiz bad json", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	created, err := h.svc.Create(r.Context(), req.CategoryName, req.count(), req.Title)
	if err != nil {
		h.log.Warn("create quiz failed", zap.String("category", req.CategoryName), zap.Error(err))
		writeError(w, err)
		return
	}
	h.log.Info("quiz created",
		zap.String("id", created.ID),
		zap.String("category", req.CategoryName),
		zap.Int("questions", len(created.QuestionIDs)),
	)
	writeJSON(w, http.StatusCreated, map[string]string{"quizId": created.ID})
}

func (h *QuizHandler) get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	wrappers, err := h.svc.Questions(r.Context(), id)
	if err != nil {
		h.log.Warn("get quiz failed", zap.String("id", id), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wrappers)
}

func (h *QuizHandler) submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var responses []domain.Response
	if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
		h.log.Warn("submit quiz bad json", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	score, err := h.svc.Submit(r.Context(), id, responses)
	if err != nil {
		h.log.Warn("submit quiz failed", zap.String("id", id), zap.Error(err))
		writeError(w, err)
		return
	}
	h.log.Info("quiz scored", zap.String("id", id), zap.Int("score", score))
	writeJSON(w, http.StatusOK, score)
}
