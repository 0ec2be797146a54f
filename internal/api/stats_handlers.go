package api

import (
	"context"
	"net/http"

	"github.com/limbo/studytrack/pkg/httputil"
	"github.com/limbo/studytrack/pkg/timefmt"
)

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get dashboard")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	d, err := s.statsService.Dashboard(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DashboardResponse{
		Last7DaysMinutes:  d.Last7DaysMinutes,
		Last7Days:         timefmt.FormatDuration(d.Last7DaysMinutes),
		Last30DaysMinutes: d.Last30DaysMinutes,
		Last30Days:        timefmt.FormatDuration(d.Last30DaysMinutes),
		ActiveGoals:       d.ActiveGoals,
		RecentSessions:    sessionViewsResponse(d.RecentSessions),
	})
	logger.Info("dashboard provided")
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get summary")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	summary, err := s.statsService.Summary(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("summary provided")
}

func (s *Server) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get heatmap")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	buckets, err := s.statsService.Heatmap(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting heatmap", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": buckets})
	logger.Info("heatmap provided")
}

// GetSubjectChart reads period from the query: 7, 30 or all (default).
func (s *Server) GetSubjectChart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get subject chart")
	if !ok {
		return
	}
	period := r.URL.Query().Get("period")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	totals, err := s.statsService.SubjectChart(ctx, uid, period)
	if err != nil {
		writeServiceError(w, logger, "getting subject chart", err)
		return
	}
	if period == "" {
		period = "all"
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"period":   period,
		"subjects": totals,
	})
	logger.Info("subject chart provided")
}
