// Package seed fills a fresh store with the demo account and four weeks of
// synthetic study history.
package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
	DemoEmail    = "demo@focusflow.com"

	HistoryDays = 28
)

var DemoSubjects = []entity.Subject{
	{Name: "Calculus", Color: "#ef4444"},
	{Name: "Python Programming", Color: "#3b82f6"},
	{Name: "World History", Color: "#10b981"},
	{Name: "Biology", Color: "#f59e0b"},
	{Name: "Spanish", Color: "#8b5cf6"},
}

type Result struct {
	User     *entity.User
	Subjects []int
	Goals    []int
	Sessions int
}

type Seeder struct {
	users    service.UserServiceI
	subjects repository.SubjectsRepositoryI
	sessions repository.SessionsRepositoryI
	goals    repository.GoalsRepositoryI
	now      func() time.Time
	rnd      *rand.Rand
}

func New(users service.UserServiceI, subjects repository.SubjectsRepositoryI, sessions repository.SessionsRepositoryI, goals repository.GoalsRepositoryI) *Seeder {
	return &Seeder{
		users:    users,
		subjects: subjects,
		sessions: sessions,
		goals:    goals,
		now:      time.Now,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

// WithSeed makes the generated history reproducible.
func (s *Seeder) WithSeed(seed int64) *Seeder {
	s.rnd = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	return s
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	user, err := s.users.Register(ctx, &service.RegisterRequest{
		Username:        DemoUsername,
		Email:           DemoEmail,
		Password:        DemoPassword,
		ConfirmPassword: DemoPassword,
	})
	if err != nil {
		return nil, errors.New("seeding demo user: " + err.Error())
	}
	res := &Result{User: user}
	for _, subject := range DemoSubjects {
		subject.UserID = user.ID
		id, err := s.subjects.Create(ctx, &subject)
		if err != nil {
			return nil, errors.New("seeding subjects: " + err.Error())
		}
		res.Subjects = append(res.Subjects, id)
	}
	now := s.now()
	weekStart, weekEnd := WeekBounds(now)
	monthStart, monthEnd := MonthBounds(now)
	calculus := res.Subjects[0]
	for _, goal := range []entity.Goal{
		{UserID: user.ID, SubjectID: &calculus, Type: entity.GoalWeekly, TargetHours: 10, PeriodStart: weekStart, PeriodEnd: weekEnd, Status: entity.GoalActive},
		{UserID: user.ID, Type: entity.GoalMonthly, TargetHours: 40, PeriodStart: monthStart, PeriodEnd: monthEnd, Status: entity.GoalActive},
	} {
		id, err := s.goals.Create(ctx, &goal)
		if err != nil {
			return nil, errors.New("seeding goals: " + err.Error())
		}
		res.Goals = append(res.Goals, id)
	}
	for _, session := range s.history(user.ID, res.Subjects, now) {
		if _, err := s.sessions.Create(ctx, session); err != nil {
			return nil, errors.New("seeding sessions: " + err.Error())
		}
		res.Sessions++
	}
	return res, nil
}

// history draws 1-3 sessions for each of the last HistoryDays days, today included.
// Start hour is 8-19 with any minute; duration is 15-134 minutes.
func (s *Seeder) history(uid int, subjects []int, now time.Time) []*entity.Session {
	sessions := make([]*entity.Session, 0, HistoryDays*2)
	for i := 0; i < HistoryDays; i++ {
		day := timefmt.StartOfDay(now).AddDate(0, 0, -i)
		perDay := s.rnd.IntN(3) + 1
		for j := 0; j < perDay; j++ {
			start := day.Add(time.Duration(s.rnd.IntN(12)+8)*time.Hour + time.Duration(s.rnd.IntN(60))*time.Minute)
			duration := s.rnd.IntN(120) + 15
			sessions = append(sessions, &entity.Session{
				UserID:          uid,
				SubjectID:       subjects[s.rnd.IntN(len(subjects))],
				StartTime:       start,
				EndTime:         start.Add(time.Duration(duration) * time.Minute),
				DurationMinutes: duration,
			})
		}
	}
	return sessions
}

// WeekBounds returns the Monday and Sunday of t's week.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := timefmt.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, -1)
}
