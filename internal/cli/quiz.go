package cli

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quizhub/internal/config"
	"quizhub/internal/infra/memory"
	pgstore "quizhub/internal/infra/postgres"
	rediscache "quizhub/internal/infra/redis"
	"quizhub/internal/logger"
	"quizhub/internal/questionclient"
	"quizhub/internal/quiz"
	transport "quizhub/internal/transport/http"
)

// NewQuizCmd builds the subcommand that starts the quiz orchestrator.
func NewQuizCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Start the quiz orchestrator service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuizServer(cmd.Context(), *configPath)
		},
	}
}

func runQuizServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	var repo quiz.Repository
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = pgstore.NewQuizStore(pool)
	} else {
		repo = memory.NewQuizRepository()
	}

	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.Duration(cfg.Redis.TTL, 10*time.Minute)
		repo = rediscache.NewQuizCache(client, repo, ttl)
	}

	services := map[string]string{}
	for name, url := range cfg.Services {
		services[name] = url
	}
	if override := os.Getenv("QUESTION_SERVICE_URL"); override != "" {
		services[questionclient.ServiceName] = override
	}
	resolver := questionclient.NewStaticResolver(services)
	timeout := config.Duration(cfg.Quiz.ClientTimeout, 5*time.Second)
	directory := questionclient.New(resolver, timeout)

	svc := quiz.NewService(repo, directory)

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	transport.NewQuizHandler(svc, log).Register(router)

	port := cfg.Quiz.Port
	if port == "" {
		port = "8090"
	}
	return serve(ctx, log, "quiz", port, router)
}
