package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/stats"
	"github.com/limbo/studytrack/pkg/entity"
)

const recentSessionsLimit = 5

// StatsService reads the store on every call; nothing is cached.
type StatsService struct {
	usersRepo    repository.UsersRepositoryI
	subjectsRepo repository.SubjectsRepositoryI
	sessionsRepo repository.SessionsRepositoryI
	goalsRepo    repository.GoalsRepositoryI
	now          func() time.Time
}

func NewStatsService(
	usersRepo repository.UsersRepositoryI,
	subjectsRepo repository.SubjectsRepositoryI,
	sessionsRepo repository.SessionsRepositoryI,
	goalsRepo repository.GoalsRepositoryI,
) *StatsService {
	if usersRepo == nil || subjectsRepo == nil || sessionsRepo == nil || goalsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		usersRepo:    usersRepo,
		subjectsRepo: subjectsRepo,
		sessionsRepo: sessionsRepo,
		goalsRepo:    goalsRepo,
		now:          time.Now,
	}
}

func (ss *StatsService) WithClock(now func() time.Time) *StatsService {
	ss.now = now
	return ss
}

func (ss *StatsService) userSessions(ctx context.Context, uid int) ([]*entity.Session, error) {
	sessions, err := ss.sessionsRepo.List(ctx, repository.SessionFilter{UserID: uid})
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return sessions, nil
}

func (ss *StatsService) userSubjects(ctx context.Context, uid int) ([]*entity.Subject, error) {
	subjects, err := ss.subjectsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	return subjects, nil
}

func (ss *StatsService) Dashboard(ctx context.Context, uid int) (*Dashboard, error) {
	sessions, err := ss.userSessions(ctx, uid)
	if err != nil {
		return nil, err
	}
	subjects, err := ss.userSubjects(ctx, uid)
	if err != nil {
		return nil, err
	}
	goals, err := ss.goalsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	active := 0
	for _, g := range goals {
		if g.Status == entity.GoalActive {
			active++
		}
	}
	now := ss.now()
	recent := resolveSessions(sessions, subjects)
	sortNewestFirst(recent)
	if len(recent) > recentSessionsLimit {
		recent = recent[:recentSessionsLimit]
	}
	return &Dashboard{
		Last7DaysMinutes:  stats.RollingMinutes(sessions, now, 7),
		Last30DaysMinutes: stats.RollingMinutes(sessions, now, 30),
		ActiveGoals:       active,
		RecentSessions:    recent,
	}, nil
}

func (ss *StatsService) Summary(ctx context.Context, uid int) (*entity.StudySummary, error) {
	sessions, err := ss.userSessions(ctx, uid)
	if err != nil {
		return nil, err
	}
	subjects, err := ss.userSubjects(ctx, uid)
	if err != nil {
		return nil, err
	}
	summary := stats.Summary(sessions, subjectNames(subjects), ss.now())
	return &summary, nil
}

func (ss *StatsService) Heatmap(ctx context.Context, uid int) ([]entity.HeatmapBucket, error) {
	sessions, err := ss.userSessions(ctx, uid)
	if err != nil {
		return nil, err
	}
	return stats.Heatmap(sessions, ss.now()), nil
}

func (ss *StatsService) SubjectChart(ctx context.Context, uid int, period string) ([]entity.SubjectTotal, error) {
	var since *time.Time
	switch period {
	case "7", "30":
		days := 7
		if period == "30" {
			days = 30
		}
		from := ss.now().Add(-time.Duration(days) * 24 * time.Hour)
		since = &from
	case "", "all":
	default:
		return nil, errorvalues.Validation("period must be one of: 7 30 all")
	}
	sessions, err := ss.userSessions(ctx, uid)
	if err != nil {
		return nil, err
	}
	subjects, err := ss.userSubjects(ctx, uid)
	if err != nil {
		return nil, err
	}
	return stats.SubjectBreakdown(sessions, subjects, since), nil
}

func (ss *StatsService) Profile(ctx context.Context, uid int) (*Profile, error) {
	user, err := ss.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	sessions, err := ss.userSessions(ctx, uid)
	if err != nil {
		return nil, err
	}
	subjects, err := ss.userSubjects(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:          *user,
		TotalHours:    stats.RoundHours(stats.TotalMinutes(sessions)),
		SessionsCount: len(sessions),
		SubjectsCount: len(subjects),
	}, nil
}
