package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// writeServiceError maps an error kind to its status. Unclassified errors are internal.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	kind := errorvalues.KindOf(err)
	var status int
	switch kind {
	case errorvalues.KindValidation:
		status = http.StatusBadRequest
	case errorvalues.KindNotFound:
		status = http.StatusNotFound
	case errorvalues.KindUnauthorized:
		status = http.StatusUnauthorized
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+action, nil)
		return
	}
	logger.Error(action+" error", slog.String("kind", kind.String()), slog.String("error", err.Error()))
	httputil.WriteKindErrorResponse(w, status, kind.String(), err.Error())
}

func requireUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action string) (int, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(action + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return 0, false
	}
	return uid, true
}

func requirePathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		logger.Error(action + " error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action string, v any) bool {
	if err := httputil.DecodeJSON(r.Body, v); err != nil {
		logger.Error(action + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID,
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.statsService.Profile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{
		User:          userResponse(&profile.User),
		TotalHours:    profile.TotalHours,
		SessionsCount: profile.SessionsCount,
		SubjectsCount: profile.SubjectsCount,
	})
	logger.Info("profile provided")
}
