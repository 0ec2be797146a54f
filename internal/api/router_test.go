package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/studytrack/internal/api"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/entity"
	jwtservice "github.com/limbo/studytrack/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudyServer(now time.Time) *api.Server {
	store := repository.NewStore()
	users := repository.NewUsersRepo(store)
	subjects := repository.NewSubjectsRepo(store)
	sessions := repository.NewSessionsRepo(store)
	goals := repository.NewGoalsRepo(store)
	clock := func() time.Time { return now }
	return api.New(&api.ServicesList{
		UserService:     service.NewUserService(users).WithClock(clock),
		SubjectsService: service.NewSubjectsService(subjects, sessions),
		SessionsService: service.NewSessionsService(sessions, subjects).WithLocation(time.UTC),
		GoalsService:    service.NewGoalsService(goals, subjects, sessions).WithClock(clock),
		TimerService:    service.NewTimerService(sessions, subjects),
		StatsService:    service.NewStatsService(users, subjects, sessions, goals).WithClock(clock),
		JwtService:      jwtservice.New("secret", time.Hour),
	})
}

type client struct {
	t     *testing.T
	serv  *api.Server
	token string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.ConfigDefault.Marshal(body)
		require.NoError(c.t, err)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}
	rr := httptest.NewRecorder()
	c.serv.ServeHTTP(rr, r)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestStudyFlowIntegrational(t *testing.T) {
	c := &client{t: t, serv: newStudyServer(time.Date(2024, 10, 25, 15, 0, 0, 0, time.UTC))}

	rr := c.do(http.MethodGet, "/api/v1/subjects", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = c.do(http.MethodPost, "/api/v1/auth/register", api.RegisterRequest{
		Username: username, Email: email, Password: password, ConfirmPassword: password,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = c.do(http.MethodPost, "/api/v1/auth/register", api.RegisterRequest{
		Username: username, Email: email, Password: password, ConfirmPassword: password,
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "validation", decode[map[string]any](t, rr)["kind"])

	rr = c.do(http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Username: username, Password: "wrong_password"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = c.do(http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, rr.Code)
	login := decode[map[string]any](t, rr)
	c.token = login["token"].(string)

	rr = c.do(http.MethodPost, "/api/v1/subjects", api.SubjectRequest{Name: "Calculus", Color: "#ef4444"})
	require.Equal(t, http.StatusCreated, rr.Code)
	subject := decode[entity.Subject](t, rr)

	for _, s := range []api.SessionRequest{
		{SubjectID: subject.ID, Date: "2024-10-22", StartTime: "09:00", EndTime: "12:20"},
		{SubjectID: subject.ID, Date: "2024-10-23", StartTime: "09:00", EndTime: "12:40"},
		{SubjectID: subject.ID, Date: "2024-10-24", StartTime: "09:00", EndTime: "12:20"},
	} {
		rr = c.do(http.MethodPost, "/api/v1/sessions", s)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
	rr = c.do(http.MethodPost, "/api/v1/sessions", api.SessionRequest{SubjectID: subject.ID, Date: "2024-10-24", StartTime: "12:00", EndTime: "11:00"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = c.do(http.MethodPost, "/api/v1/goals", api.GoalRequest{
		SubjectID: &subject.ID, Type: "weekly", TargetHours: 10, PeriodStart: "2024-10-21", PeriodEnd: "2024-10-27",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = c.do(http.MethodGet, "/api/v1/goals", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	goals := decode[api.GoalsResponse](t, rr)
	require.Len(t, goals.Active, 1)
	require.NotNil(t, goals.Active[0].Progress)
	assert.Equal(t, 10.3, goals.Active[0].Progress.Hours)
	assert.Equal(t, 100, goals.Active[0].Progress.Percentage)
	assert.Equal(t, "Calculus - Weekly Goal", goals.Active[0].Title)

	rr = c.do(http.MethodGet, "/api/v1/stats/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	summary := decode[entity.StudySummary](t, rr)
	assert.Equal(t, 620, summary.TotalMinutes)
	assert.Equal(t, "Calculus", summary.MostStudiedSubject)
	assert.Equal(t, 3, summary.Streak)

	rr = c.do(http.MethodGet, "/api/v1/sessions?from=2024-10-23", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[struct {
		Sessions []api.SessionResponse `json:"sessions"`
	}](t, rr)
	require.Len(t, list.Sessions, 2)
	assert.Equal(t, "2024-10-24 09:00:00", list.Sessions[0].StartTime)

	rr = c.do(http.MethodDelete, "/api/v1/subjects/"+strconv.Itoa(subject.ID), nil)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = c.do(http.MethodGet, "/api/v1/sessions", nil)
	list = decode[struct {
		Sessions []api.SessionResponse `json:"sessions"`
	}](t, rr)
	require.Len(t, list.Sessions, 3)
	assert.Equal(t, "Unknown", list.Sessions[0].SubjectName)
	assert.True(t, list.Sessions[0].Orphaned)

	rr = c.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	profile := decode[api.ProfileResponse](t, rr)
	assert.Equal(t, username, profile.User.Username)
	assert.Equal(t, "2024-10-25 15:00:00", profile.User.CreatedAt)
	assert.Equal(t, 3, profile.SessionsCount)
	assert.Zero(t, profile.SubjectsCount)
}
