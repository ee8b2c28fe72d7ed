package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"quizhub/internal/domain"
	"quizhub/internal/question"
)

// QuestionHandler exposes the question service's REST surface.
type QuestionHandler struct {
	svc *question.Service
	log *zap.Logger
}

func NewQuestionHandler(svc *question.Service, log *zap.Logger) *QuestionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuestionHandler{svc: svc, log: log}
}

func (h *QuestionHandler) Register(r *mux.Router) {
	r.HandleFunc("/question/add", h.add).Methods(http.MethodPost)
	r.HandleFunc("/question/category/{category}", h.byCategory).Methods(http.MethodGet)
	r.HandleFunc("/question/generate", h.generate).Methods(http.MethodGet)
	r.HandleFunc("/question/getQuestions", h.getQuestions).Methods(http.MethodPost)
	r.HandleFunc("/question/getScore", h.getScore).Methods(http.MethodPost)
}

func (h *QuestionHandler) add(w http.ResponseWriter, r *http.Request) {
	var q domain.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.log.Warn("add question bad json", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	saved, err := h.svc.Create(r.Context(), q)
	if err != nil {
		h.log.Warn("add question failed", zap.Error(err))
		writeError(w, err)
		return
	}
	h.log.Info("question created", zap.String("id", saved.ID), zap.String("category", saved.Category))
	writeJSON(w, http.StatusCreated, saved)
}

func (h *QuestionHandler) byCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	questions, err := h.svc.ByCategory(r.Context(), category)
	if err != nil {
		h.log.Error("category lookup failed", zap.String("category", category), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) generate(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("categoryName")
	rawCount := r.URL.Query().Get("numQuestion")
	if rawCount == "" {
		// numQuestions is accepted as an alias for numQuestion.
		rawCount = r.URL.Query().Get("numQuestions")
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "numQuestion must be an integer"})
		return
	}

	ids, err := h.svc.RandomIDs(r.Context(), category, count)
	if err != nil {
		h.log.Error("generate failed", zap.String("category", category), zap.Error(err))
		writeError(w, err)
		return
	}
	h.log.Info("questions drawn", zap.String("category", category), zap.Int("requested", count), zap.Int("drawn", len(ids)))
	writeJSON(w, http.StatusOK, ids)
}

func (h *QuestionHandler) getQuestions(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		h.log.Warn("get questions bad json", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	wrappers, err := h.svc.Wrappers(r.Context(), ids)
	if err != nil {
		h.log.Error("get questions failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wrappers)
}

func (h *QuestionHandler) getScore(w http.ResponseWriter, r *http.Request) {
	var responses []domain.Response
	if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
		h.log.Warn("get score bad json", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	score, err := h.svc.Score(r.Context(), responses)
	if err != nil {
		h.log.Error("scoring failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}
