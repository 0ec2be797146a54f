package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/studytrack/internal/api"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/seed"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/cleanup"
	"github.com/limbo/studytrack/pkg/config"
	jwtservice "github.com/limbo/studytrack/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var version = "dev"

const devJWTSecret = "studytrack-dev-secret"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "studytrack",
		Short:        "Study sessions, subjects and goals tracker",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "studytrack "+version)
		},
	}
}

func newServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over an in-memory store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New(envFile)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional .env file to load")
	return cmd
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.GetString("LOG_LEVEL")),
	})))
	slog.Info("configuration loaded", slog.String("env_file", cfg.EnvFile()))
	defer cleanup.CleanUp()

	store := repository.NewStore()
	usersRepo := repository.NewUsersRepo(store)
	subjectsRepo := repository.NewSubjectsRepo(store)
	sessionsRepo := repository.NewSessionsRepo(store)
	goalsRepo := repository.NewGoalsRepo(store)

	userService := service.NewUserService(usersRepo)
	timerService := service.NewTimerService(sessionsRepo, subjectsRepo)
	cleanup.Register(&cleanup.Job{Name: "timers", F: func() error {
		timerService.StopAll()
		return nil
	}})

	if cfg.GetBool("SEED_SAMPLE_DATA", true) {
		seeder := seed.New(userService, subjectsRepo, sessionsRepo, goalsRepo)
		if v := cfg.GetInt64("SEED_RANDOM", 0); v != 0 {
			seeder.WithSeed(v)
		}
		res, err := seeder.Run(ctx)
		if err != nil {
			slog.Error("seeding sample data failed", slog.String("error", err.Error()))
			return err
		}
		slog.Info("sample data seeded", slog.String("user", res.User.Username), slog.Int("sessions", res.Sessions))
	}

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		slog.Warn("JWT_SECRET is not set, using development secret")
		secret = devJWTSecret
	}
	serv := api.New(&api.ServicesList{
		UserService:     userService,
		SubjectsService: service.NewSubjectsService(subjectsRepo, sessionsRepo),
		SessionsService: service.NewSessionsService(sessionsRepo, subjectsRepo),
		GoalsService:    service.NewGoalsService(goalsRepo, subjectsRepo, sessionsRepo),
		TimerService:    timerService,
		StatsService:    service.NewStatsService(usersRepo, subjectsRepo, sessionsRepo, goalsRepo),
		JwtService:      jwtservice.New(secret, cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
	})
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"), cfg.GetDuration("SHUTDOWN_TIMEOUT", 5*time.Second))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		return err
	}
	slog.Info("server stopped")
	return nil
}
