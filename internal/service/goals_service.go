package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/stats"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

type GoalsService struct {
	goalsRepo    repository.GoalsRepositoryI
	subjectsRepo repository.SubjectsRepositoryI
	sessionsRepo repository.SessionsRepositoryI
	now          func() time.Time
	loc          *time.Location
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, subjectsRepo repository.SubjectsRepositoryI, sessionsRepo repository.SessionsRepositoryI) *GoalsService {
	if goalsRepo == nil || subjectsRepo == nil || sessionsRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	return &GoalsService{
		goalsRepo:    goalsRepo,
		subjectsRepo: subjectsRepo,
		sessionsRepo: sessionsRepo,
		now:          time.Now,
		loc:          time.Local,
	}
}

func (gs *GoalsService) WithClock(now func() time.Time) *GoalsService {
	gs.now = now
	gs.loc = now().Location()
	return gs
}

// CreateGoal stores an active goal. A set subject must exist and belong to uid.
func (gs *GoalsService) CreateGoal(ctx context.Context, uid int, req GoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, err := timefmt.ParseDate(req.PeriodStart, gs.loc)
	if err != nil {
		return nil, errorvalues.Validation("invalid period start")
	}
	end, err := timefmt.ParseDate(req.PeriodEnd, gs.loc)
	if err != nil {
		return nil, errorvalues.Validation("invalid period end")
	}
	if end.Before(start) {
		return nil, errorvalues.Validation("period end must not be before period start")
	}
	if req.SubjectID != nil {
		if _, err := ownedSubject(ctx, gs.subjectsRepo, *req.SubjectID, uid); err != nil {
			return nil, err
		}
	}
	goal := entity.Goal{
		UserID:      uid,
		SubjectID:   req.SubjectID,
		Type:        entity.GoalType(req.Type),
		TargetHours: req.TargetHours,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      entity.GoalActive,
	}
	id, err := gs.goalsRepo.Create(ctx, &goal)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.ID = id
	return &goal, nil
}

func (gs *GoalsService) ownedGoal(ctx context.Context, id, uid int) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

func (gs *GoalsService) CompleteGoal(ctx context.Context, id, uid int) (*entity.Goal, error) {
	goal, err := gs.ownedGoal(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	goal.Status = entity.GoalCompleted
	if err = gs.goalsRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, id, uid int) error {
	if _, err := gs.ownedGoal(ctx, id, uid); err != nil {
		return err
	}
	err := gs.goalsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) ListGoals(ctx context.Context, uid int) (*GoalsOverview, error) {
	goals, err := gs.goalsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	subjects, err := gs.subjectsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	sessions, err := gs.sessionsRepo.List(ctx, repository.SessionFilter{UserID: uid})
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	names := subjectNames(subjects)
	now := gs.now()
	overview := &GoalsOverview{
		Active:    make([]GoalCard, 0),
		Completed: make([]GoalCard, 0),
	}
	for _, goal := range goals {
		card := goalCard(goal, names, sessions, now)
		if goal.Status == entity.GoalActive {
			overview.Active = append(overview.Active, card)
		} else {
			overview.Completed = append(overview.Completed, card)
		}
	}
	return overview, nil
}

func subjectNames(subjects []*entity.Subject) map[int]string {
	names := make(map[int]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names
}

func goalCard(goal *entity.Goal, names map[int]string, sessions []*entity.Session, now time.Time) GoalCard {
	subjectName := stats.AllSubjectsName
	if goal.SubjectID != nil {
		subjectName = stats.UnknownSubject
		if name, ok := names[*goal.SubjectID]; ok {
			subjectName = name
		}
	}
	goalType := string(goal.Type)
	if goalType != "" {
		goalType = strings.ToUpper(goalType[:1]) + goalType[1:]
	}
	return GoalCard{
		Goal:        *goal,
		SubjectName: subjectName,
		Title:       subjectName + " - " + goalType + " Goal",
		Progress:    stats.GoalProgress(goal, sessions, now),
	}
}
