package cli

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"quizhub/internal/config"
	"quizhub/internal/domain"
	"quizhub/internal/infra/memory"
	pgstore "quizhub/internal/infra/postgres"
	"quizhub/internal/logger"
	"quizhub/internal/question"
	transport "quizhub/internal/transport/http"
)

// NewQuestionCmd builds the subcommand that starts the question service.
func NewQuestionCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "question",
		Short: "Start the question service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionServer(cmd.Context(), *configPath)
		},
	}
}

func runQuestionServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	var repo question.Repository
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = pgstore.NewQuestionStore(pool)
	} else {
		repo = seededQuestionRepository(ctx)
	}

	svc := question.NewService(repo)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	transport.NewQuestionHandler(svc, log).Register(router)

	port := cfg.Question.Port
	if port == "" {
		port = "8081"
	}
	return serve(ctx, log, "question", port, router)
}

// seededQuestionRepository backs the no-database demo mode with a few
// sample questions.
func seededQuestionRepository(ctx context.Context) *memory.QuestionRepository {
	repo := memory.NewQuestionRepository()
	for _, q := range []domain.Question{
		{
			Title:      "Which keyword declares a constant in Go?",
			Option1:    "let",
			Option2:    "const",
			Option3:    "final",
			Option4:    "static",
			Answer:     "const",
			Difficulty: "Easy",
			Category:   "Go",
		},
		{
			Title:      "What does a nil map lookup return?",
			Option1:    "panic",
			Option2:    "compile error",
			Option3:    "the zero value",
			Option4:    "nil pointer dereference",
			Answer:     "the zero value",
			Difficulty: "Medium",
			Category:   "Go",
		},
		{
			Title:      "Which builtin grows a slice?",
			Option1:    "append",
			Option2:    "push",
			Option3:    "add",
			Option4:    "grow",
			Answer:     "append",
			Difficulty: "Easy",
			Category:   "Go",
		},
	} {
		_, _ = repo.Save(ctx, q)
	}
	return repo
}
