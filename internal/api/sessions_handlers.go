package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/httputil"
)

type SessionRequest struct {
	SubjectID int    `json:"subject_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (req SessionRequest) toService() service.SessionRequest {
	return service.SessionRequest{
		SubjectID: req.SubjectID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create session")
	if !ok {
		return
	}
	var req SessionRequest
	if !decodeBody(w, r, logger, "create session", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.sessionsService.CreateSession(ctx, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "creating session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sessionResponse(session))
	logger.Info("session created")
}

// GetSessions accepts optional subject_id, from and to (YYYY-MM-DD) query params.
func (s *Server) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get sessions")
	if !ok {
		return
	}
	q := r.URL.Query()
	query := service.SessionsQuery{
		From: q.Get("from"),
		To:   q.Get("to"),
	}
	if raw := q.Get("subject_id"); raw != "" {
		subjectID, err := strconv.Atoi(raw)
		if err != nil || subjectID <= 0 {
			logger.Error("get sessions error: invalid subject filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid subject_id", nil)
			return
		}
		query.SubjectID = &subjectID
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	views, err := s.sessionsService.ListSessions(ctx, uid, query)
	if err != nil {
		writeServiceError(w, logger, "getting sessions list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"sessions": sessionViewsResponse(views)})
	logger.Info("sessions provided")
}

func (s *Server) UpdateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update session")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "update session")
	if !ok {
		return
	}
	var req SessionRequest
	if !decodeBody(w, r, logger, "update session", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.sessionsService.UpdateSession(ctx, id, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "updating session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessionResponse(session))
	logger.Info("session updated")
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "session deletion")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "session deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.sessionsService.DeleteSession(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "deleting session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("session deleted")
}
