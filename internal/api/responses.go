package api

import (
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

// Timestamps leave the API in timefmt.DateTimeLayout, dates in timefmt.DateLayout.

type UserResponse struct {
	ID        int    `json:"uid"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SubjectCardResponse struct {
	entity.Subject
	TotalMinutes int    `json:"total_minutes"`
	Total        string `json:"total"`
}

type SessionResponse struct {
	ID              int    `json:"session_id"`
	SubjectID       int    `json:"subject_id"`
	SubjectName     string `json:"subject_name,omitempty"`
	SubjectColor    string `json:"subject_color,omitempty"`
	Orphaned        bool   `json:"orphaned,omitempty"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
}

type GoalResponse struct {
	ID          int                  `json:"goal_id"`
	SubjectID   *int                 `json:"subject_id"`
	SubjectName string               `json:"subject_name,omitempty"`
	Title       string               `json:"title,omitempty"`
	Type        entity.GoalType      `json:"goal_type"`
	TargetHours float64              `json:"target_hours"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	Status      entity.GoalStatus    `json:"status"`
	Progress    *entity.GoalProgress `json:"progress,omitempty"`
}

type GoalsResponse struct {
	Active    []GoalResponse `json:"active"`
	Completed []GoalResponse `json:"completed"`
}

type TimerResponse struct {
	entity.TimerStatus
	StartedAt string `json:"started_at,omitempty"`
	Display   string `json:"display"`
}

type StopTimerResponse struct {
	Recorded bool             `json:"recorded"`
	Session  *SessionResponse `json:"session,omitempty"`
}

type DashboardResponse struct {
	Last7DaysMinutes  int               `json:"last_7_days_minutes"`
	Last7Days         string            `json:"last_7_days"`
	Last30DaysMinutes int               `json:"last_30_days_minutes"`
	Last30Days        string            `json:"last_30_days"`
	ActiveGoals       int               `json:"active_goals"`
	RecentSessions    []SessionResponse `json:"recent_sessions"`
}

type ProfileResponse struct {
	User          UserResponse `json:"user"`
	TotalHours    float64      `json:"total_hours"`
	SessionsCount int          `json:"sessions_count"`
	SubjectsCount int          `json:"subjects_count"`
}

func userResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: timefmt.FormatDateTime(u.CreatedAt),
	}
}

func sessionResponse(s *entity.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		SubjectID:       s.SubjectID,
		StartTime:       timefmt.FormatDateTime(s.StartTime),
		EndTime:         timefmt.FormatDateTime(s.EndTime),
		DurationMinutes: s.DurationMinutes,
		Duration:        timefmt.FormatDuration(s.DurationMinutes),
	}
}

func sessionViewResponse(v service.SessionView) SessionResponse {
	resp := sessionResponse(&v.Session)
	resp.SubjectName = v.SubjectName
	resp.SubjectColor = v.SubjectColor
	resp.Orphaned = v.Orphaned
	return resp
}

func sessionViewsResponse(views []service.SessionView) []SessionResponse {
	resp := make([]SessionResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, sessionViewResponse(v))
	}
	return resp
}

func goalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		SubjectID:   g.SubjectID,
		Type:        g.Type,
		TargetHours: g.TargetHours,
		PeriodStart: timefmt.FormatDate(g.PeriodStart),
		PeriodEnd:   timefmt.FormatDate(g.PeriodEnd),
		Status:      g.Status,
	}
}

func goalCardsResponse(cards []service.GoalCard) []GoalResponse {
	resp := make([]GoalResponse, 0, len(cards))
	for _, c := range cards {
		g := goalResponse(&c.Goal)
		g.SubjectName = c.SubjectName
		g.Title = c.Title
		progress := c.Progress
		g.Progress = &progress
		resp = append(resp, g)
	}
	return resp
}

func timerResponse(v *service.TimerView) TimerResponse {
	resp := TimerResponse{
		TimerStatus: v.Status,
		Display:     v.Display,
	}
	if v.Status.Running {
		resp.StartedAt = timefmt.FormatDateTime(v.Status.StartedAt)
	}
	return resp
}
