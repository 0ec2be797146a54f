package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/studytrack/internal/api"
	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/internal/service/mocks"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/httputil"
	jwtservice "github.com/limbo/studytrack/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_user"
	email    = "test@focusflow.com"
	password = "test_password"
	userID   = 1
)

func withUID(r *http.Request, uid int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	req := api.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	}
	body, err := sonic.ConfigDefault.Marshal(req)
	require.NoError(t, err)
	expected := &service.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	}

	testCases := []struct {
		name         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			name:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(&entity.User{ID: userID, Username: username}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "existed user",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "passwords mismatch",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errorvalues.ErrPasswordMismatch)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret", time.Hour),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{ID: userID, Username: username}, nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		token, ok := result["token"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, token)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errors.New("mocked error"))
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": ` + strconv.Itoa(uid) + `}`))
}

func TestAuthMiddleware(t *testing.T) {
	secret := "secret"
	store := repository.NewStore()
	userService := service.NewUserService(repository.NewUsersRepo(store))
	jwt := jwtservice.New(secret, time.Hour)
	serv := api.New(&api.ServicesList{
		UserService: userService,
		JwtService:  jwt,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	user, err := userService.Register(context.Background(), &service.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"uid": 1}`, rr.Body.String())
	})
	t.Run("no header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/endpoint", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("malformed header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Token "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("unknown user", func(t *testing.T) {
		ghost, err := jwt.GenerateToken(&entity.User{ID: 42, Username: "ghost"})
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+ghost)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestCreateSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockSubjectsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		SubjectsService: sService,
	})
	subject := api.SubjectRequest{
		Name:  "Calculus",
		Color: "#ef4444",
	}
	body, err := sonic.ConfigDefault.Marshal(subject)
	require.NoError(t, err)
	expected := service.SubjectRequest{Name: subject.Name, Color: subject.Color}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				sService.EXPECT().CreateSubject(gomock.Any(), userID, expected).Return(&entity.Subject{
					ID:     1,
					UserID: userID,
					Name:   subject.Name,
					Color:  subject.Color,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				sService.EXPECT().CreateSubject(gomock.Any(), userID, expected).Return(nil, errorvalues.Validation("validation error: Name is required"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				sService.EXPECT().CreateSubject(gomock.Any(), userID, expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodPost, "/api/v1/subjects", tc.Body), userID)
		serv.CreateSubject(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.CreateSubject(rr, httptest.NewRequest(http.MethodPost, "/api/v1/subjects", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestDeleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockSessionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		SessionsService: sService,
	})
	sessionID := 3

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				sService.EXPECT().DeleteSession(gomock.Any(), sessionID, userID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				sService.EXPECT().DeleteSession(gomock.Any(), sessionID, userID).Return(errorvalues.ErrSessionNotFound)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				sService.EXPECT().DeleteSession(gomock.Any(), sessionID, userID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				sService.EXPECT().DeleteSession(gomock.Any(), sessionID, userID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/3", nil), userID)
		r.SetPathValue("id", strconv.Itoa(sessionID))
		serv.DeleteSession(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}

	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/abc", nil), userID)
		r.SetPathValue("id", "abc")
		serv.DeleteSession(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetSessionsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockSessionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		SessionsService: sService,
	})
	subjectID := 2
	start := time.Date(2024, 10, 25, 9, 0, 0, 0, time.UTC)
	sService.EXPECT().ListSessions(gomock.Any(), userID, service.SessionsQuery{
		SubjectID: &subjectID,
		From:      "2024-10-01",
		To:        "2024-10-31",
	}).Return([]service.SessionView{{
		Session: entity.Session{
			ID:              5,
			UserID:          userID,
			SubjectID:       subjectID,
			StartTime:       start,
			EndTime:         start.Add(90 * time.Minute),
			DurationMinutes: 90,
		},
		SubjectName:  "Calculus",
		SubjectColor: "#ef4444",
	}}, nil)

	rr := httptest.NewRecorder()
	r := withUID(httptest.NewRequest(http.MethodGet, "/api/v1/sessions?subject_id=2&from=2024-10-01&to=2024-10-31", nil), userID)
	serv.GetSessions(rr, r)
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp struct {
		Sessions []api.SessionResponse `json:"sessions"`
	}
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "2024-10-25 09:00:00", resp.Sessions[0].StartTime)
	assert.Equal(t, "2024-10-25 10:30:00", resp.Sessions[0].EndTime)
	assert.Equal(t, "1h 30m", resp.Sessions[0].Duration)
	assert.Equal(t, "Calculus", resp.Sessions[0].SubjectName)

	t.Run("invalid subject filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := withUID(httptest.NewRequest(http.MethodGet, "/api/v1/sessions?subject_id=x", nil), userID)
		serv.GetSessions(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestStopTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTimerServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TimerService: tService,
	})
	start := time.Date(2024, 10, 25, 10, 0, 0, 0, time.UTC)

	t.Run("recorded", func(t *testing.T) {
		tService.EXPECT().StopTimer(gomock.Any(), userID).Return(&entity.Session{
			ID:              1,
			UserID:          userID,
			SubjectID:       1,
			StartTime:       start,
			EndTime:         start.Add(25*time.Minute + 30*time.Second),
			DurationMinutes: 25,
		}, nil)
		rr := httptest.NewRecorder()
		serv.StopTimer(rr, withUID(httptest.NewRequest(http.MethodPost, "/api/v1/timer/stop", nil), userID))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.StopTimerResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Recorded)
		require.NotNil(t, resp.Session)
		assert.Equal(t, 25, resp.Session.DurationMinutes)
	})
	t.Run("under a minute", func(t *testing.T) {
		tService.EXPECT().StopTimer(gomock.Any(), userID).Return(nil, nil)
		rr := httptest.NewRecorder()
		serv.StopTimer(rr, withUID(httptest.NewRequest(http.MethodPost, "/api/v1/timer/stop", nil), userID))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"recorded": false}`, rr.Body.String())
	})
	t.Run("not running", func(t *testing.T) {
		tService.EXPECT().StopTimer(gomock.Any(), userID).Return(nil, errorvalues.ErrTimerNotRunning)
		rr := httptest.NewRecorder()
		serv.StopTimer(rr, withUID(httptest.NewRequest(http.MethodPost, "/api/v1/timer/stop", nil), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "validation", resp.Kind)
		assert.Equal(t, "timer is not running", resp.Message)
	})
}

func TestGetSubjectChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	stService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: stService,
	})
	testCases := []struct {
		Query        string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Query:        "?period=7",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				stService.EXPECT().SubjectChart(gomock.Any(), userID, "7").Return([]entity.SubjectTotal{
					{SubjectID: 1, Name: "Calculus", Color: "#ef4444", Minutes: 165, Hours: 2.8},
				}, nil)
			},
		},
		{
			Query:        "",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				stService.EXPECT().SubjectChart(gomock.Any(), userID, "").Return([]entity.SubjectTotal{}, nil)
			},
		},
		{
			Query:        "?period=365",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				stService.EXPECT().SubjectChart(gomock.Any(), userID, "365").Return(nil, errorvalues.Validation("period must be one of: 7 30 all"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		serv.GetSubjectChart(rr, withUID(httptest.NewRequest(http.MethodGet, "/api/v1/stats/subjects"+tc.Query, nil), userID))
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCompleteGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goal := &entity.Goal{
		ID:          4,
		UserID:      userID,
		Type:        entity.GoalWeekly,
		TargetHours: 10,
		PeriodStart: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC),
		Status:      entity.GoalCompleted,
	}
	gService.EXPECT().CompleteGoal(gomock.Any(), 4, userID).Return(goal, nil)
	gService.EXPECT().CompleteGoal(gomock.Any(), 5, userID).Return(nil, errorvalues.ErrGoalNotFound)

	rr := httptest.NewRecorder()
	r := withUID(httptest.NewRequest(http.MethodPost, "/api/v1/goals/4/complete", nil), userID)
	r.SetPathValue("id", "4")
	serv.CompleteGoal(rr, r)
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.GoalResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, entity.GoalCompleted, resp.Status)
	assert.Equal(t, "2024-10-27", resp.PeriodEnd)
	assert.Nil(t, resp.SubjectID)

	rr = httptest.NewRecorder()
	r = withUID(httptest.NewRequest(http.MethodPost, "/api/v1/goals/5/complete", nil), userID)
	r.SetPathValue("id", "5")
	serv.CompleteGoal(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}
