package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/studytrack/internal/service"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	subjectsService service.SubjectsServiceI
	sessionsService service.SessionsServiceI
	goalsService    service.GoalsServiceI
	timerService    service.TimerServiceI
	statsService    service.StatsServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	SubjectsService service.SubjectsServiceI
	SessionsService service.SessionsServiceI
	GoalsService    service.GoalsServiceI
	TimerService    service.TimerServiceI
	StatsService    service.StatsServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		subjectsService: servicesOptions.SubjectsService,
		sessionsService: servicesOptions.SessionsService,
		goalsService:    servicesOptions.GoalsService,
		timerService:    servicesOptions.TimerService,
		statsService:    servicesOptions.StatsService,
		jwtService:      servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/profile", s.GetProfile)

			r.Get("/subjects", s.GetSubjects)
			r.Post("/subjects", s.CreateSubject)
			r.Put("/subjects/{id}", s.UpdateSubject)
			r.Delete("/subjects/{id}", s.DeleteSubject)

			r.Get("/sessions", s.GetSessions)
			r.Post("/sessions", s.CreateSession)
			r.Put("/sessions/{id}", s.UpdateSession)
			r.Delete("/sessions/{id}", s.DeleteSession)

			r.Get("/goals", s.GetGoals)
			r.Post("/goals", s.CreateGoal)
			r.Post("/goals/{id}/complete", s.CompleteGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)

			r.Get("/timer", s.GetTimer)
			r.Post("/timer/start", s.StartTimer)
			r.Post("/timer/stop", s.StopTimer)

			r.Get("/stats/dashboard", s.GetDashboard)
			r.Get("/stats/summary", s.GetSummary)
			r.Get("/stats/heatmap", s.GetHeatmap)
			r.Get("/stats/subjects", s.GetSubjectChart)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
