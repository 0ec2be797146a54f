package api

import (
	"context"
	"net/http"

	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/httputil"
)

// GoalRequest leaves subject_id null for an all-subjects goal.
type GoalRequest struct {
	SubjectID   *int    `json:"subject_id"`
	Type        string  `json:"goal_type"`
	TargetHours float64 `json:"target_hours"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "create goal")
	if !ok {
		return
	}
	var req GoalRequest
	if !decodeBody(w, r, logger, "create goal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, service.GoalRequest{
		SubjectID:   req.SubjectID,
		Type:        req.Type,
		TargetHours: req.TargetHours,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	})
	if err != nil {
		writeServiceError(w, logger, "creating goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goalResponse(goal))
	logger.Info("goal created")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get goals")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	overview, err := s.goalsService.ListGoals(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting goals list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GoalsResponse{
		Active:    goalCardsResponse(overview.Active),
		Completed: goalCardsResponse(overview.Completed),
	})
	logger.Info("goals provided")
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "complete goal")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "complete goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	goal, err := s.goalsService.CompleteGoal(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "completing goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goalResponse(goal))
	logger.Info("goal completed")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "goal deletion")
	if !ok {
		return
	}
	id, ok := requirePathID(w, r, logger, "goal deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "deleting goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted")
}
