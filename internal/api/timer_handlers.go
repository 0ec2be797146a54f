package api

import (
	"context"
	"net/http"

	"github.com/limbo/studytrack/pkg/httputil"
)

type StartTimerRequest struct {
	SubjectID int `json:"subject_id"`
}

func (s *Server) GetTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get timer")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.timerService.TimerStatus(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting timer status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(view))
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "start timer")
	if !ok {
		return
	}
	var req StartTimerRequest
	if !decodeBody(w, r, logger, "start timer", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.timerService.StartTimer(ctx, uid, req.SubjectID)
	if err != nil {
		writeServiceError(w, logger, "starting timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(view))
	logger.Info("timer started")
}

// StopTimer answers recorded=false when less than a minute elapsed.
func (s *Server) StopTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "stop timer")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.timerService.StopTimer(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "stopping timer", err)
		return
	}
	resp := StopTimerResponse{}
	if session != nil {
		sr := sessionResponse(session)
		resp.Recorded = true
		resp.Session = &sr
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("timer stopped")
}
