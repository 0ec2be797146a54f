package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/internal/stats"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService(t *testing.T) {
	f := newFixture(t)
	s := service.NewStatsService(f.users, f.subjects, f.sessions, f.goals).WithClock(clock)
	ctx := context.Background()
	calculus := f.subject(t, "Calculus")
	biology := f.subject(t, "Biology")
	at := func(daysAgo, hour int) time.Time {
		d := fixedNow.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
	}
	f.session(t, calculus, at(0, 9), 90)
	f.session(t, biology, at(1, 9), 30)
	f.session(t, calculus, at(2, 9), 60)
	f.session(t, biology, at(10, 9), 120)
	f.session(t, calculus, at(40, 9), 300)
	f.session(t, calculus, at(3, 9), 15)
	f.session(t, biology, at(3, 12), 15)
	_, err := f.goals.Create(ctx, &entity.Goal{UserID: f.uid, Type: entity.GoalWeekly, TargetHours: 5, Status: entity.GoalActive})
	require.NoError(t, err)
	_, err = f.goals.Create(ctx, &entity.Goal{UserID: f.uid, Type: entity.GoalWeekly, TargetHours: 5, Status: entity.GoalCompleted})
	require.NoError(t, err)

	t.Run("dashboard", func(t *testing.T) {
		d, err := s.Dashboard(ctx, f.uid)
		require.NoError(t, err)
		assert.Equal(t, 210, d.Last7DaysMinutes)
		assert.Equal(t, 330, d.Last30DaysMinutes)
		assert.Equal(t, 1, d.ActiveGoals)
		require.Len(t, d.RecentSessions, 5)
		assert.Equal(t, 1, d.RecentSessions[0].Session.ID)
		assert.Equal(t, "Calculus", d.RecentSessions[0].SubjectName)
	})
	t.Run("summary", func(t *testing.T) {
		summary, err := s.Summary(ctx, f.uid)
		require.NoError(t, err)
		assert.Equal(t, 630, summary.TotalMinutes)
		assert.Equal(t, 10, summary.TotalHours)
		assert.Equal(t, 6, summary.StudyDays)
		assert.Equal(t, 105, summary.AvgDailyMinutes)
		assert.Equal(t, "Calculus", summary.MostStudiedSubject)
		assert.Equal(t, 4, summary.Streak)
	})
	t.Run("heatmap", func(t *testing.T) {
		buckets, err := s.Heatmap(ctx, f.uid)
		require.NoError(t, err)
		require.Len(t, buckets, stats.HeatmapDays)
		assert.Equal(t, "2024-10-25", buckets[len(buckets)-1].Date)
		assert.Equal(t, entity.TierLow, buckets[len(buckets)-1].Tier)
	})
	t.Run("subject chart", func(t *testing.T) {
		week, err := s.SubjectChart(ctx, f.uid, "7")
		require.NoError(t, err)
		require.Len(t, week, 2)
		assert.Equal(t, 165, week[0].Minutes)
		assert.Equal(t, 2.8, week[0].Hours)
		all, err := s.SubjectChart(ctx, f.uid, "all")
		require.NoError(t, err)
		assert.Equal(t, 465, all[0].Minutes)
		_, err = s.SubjectChart(ctx, f.uid, "365")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("profile", func(t *testing.T) {
		p, err := s.Profile(ctx, f.uid)
		require.NoError(t, err)
		assert.Equal(t, "demo", p.User.Username)
		assert.Equal(t, 10.5, p.TotalHours)
		assert.Equal(t, 7, p.SessionsCount)
		assert.Equal(t, 2, p.SubjectsCount)
		_, err = s.Profile(ctx, f.uid+1)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestStatsServiceDBError(t *testing.T) {
	f := newFixture(t)
	s := service.NewStatsService(f.users, f.subjects, &sessionsRepoMock{state: stateDBError}, f.goals)
	_, err := s.Dashboard(context.Background(), f.uid)
	assert.Error(t, err)
	_, err = s.Heatmap(context.Background(), f.uid)
	assert.Error(t, err)
}
