package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/stats"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

type SessionsService struct {
	sessionsRepo repository.SessionsRepositoryI
	subjectsRepo repository.SubjectsRepositoryI
	loc          *time.Location
}

func NewSessionsService(sessionsRepo repository.SessionsRepositoryI, subjectsRepo repository.SubjectsRepositoryI) *SessionsService {
	if sessionsRepo == nil || subjectsRepo == nil {
		log.Fatal("on sessions service provided nil repos")
	}
	return &SessionsService{
		sessionsRepo: sessionsRepo,
		subjectsRepo: subjectsRepo,
		loc:          time.Local,
	}
}

// WithLocation sets the zone manual entries are read in.
func (ss *SessionsService) WithLocation(loc *time.Location) *SessionsService {
	ss.loc = loc
	return ss
}

// DurationMinutes is floor((end-start) in minutes).
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}

// buildSession validates req and derives the stored times and duration.
func (ss *SessionsService) buildSession(ctx context.Context, uid int, req SessionRequest) (*entity.Session, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ownedSubject(ctx, ss.subjectsRepo, req.SubjectID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return nil, errorvalues.Validation("please select a valid subject")
		}
		return nil, err
	}
	start, err := timefmt.CombineDateClock(req.Date, req.StartTime, ss.loc)
	if err != nil {
		return nil, errorvalues.Validation("invalid start time")
	}
	end, err := timefmt.CombineDateClock(req.Date, req.EndTime, ss.loc)
	if err != nil {
		return nil, errorvalues.Validation("invalid end time")
	}
	if !end.After(start) {
		return nil, errorvalues.ErrEndBeforeStart
	}
	return &entity.Session{
		UserID:          uid,
		SubjectID:       req.SubjectID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: DurationMinutes(start, end),
	}, nil
}

func (ss *SessionsService) CreateSession(ctx context.Context, uid int, req SessionRequest) (*entity.Session, error) {
	session, err := ss.buildSession(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	id, err := ss.sessionsRepo.Create(ctx, session)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	session.ID = id
	return session, nil
}

func (ss *SessionsService) ownedSession(ctx context.Context, id, uid int) (*entity.Session, error) {
	session, err := ss.sessionsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return session, nil
}

func (ss *SessionsService) UpdateSession(ctx context.Context, id, uid int, req SessionRequest) (*entity.Session, error) {
	if _, err := ss.ownedSession(ctx, id, uid); err != nil {
		return nil, err
	}
	session, err := ss.buildSession(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	session.ID = id
	if err = ss.sessionsRepo.Update(ctx, session); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *SessionsService) DeleteSession(ctx context.Context, id, uid int) error {
	if _, err := ss.ownedSession(ctx, id, uid); err != nil {
		return err
	}
	err := ss.sessionsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}

func (ss *SessionsService) ListSessions(ctx context.Context, uid int, query SessionsQuery) ([]SessionView, error) {
	if err := validateStruct(query); err != nil {
		return nil, err
	}
	filter := repository.SessionFilter{UserID: uid, SubjectID: query.SubjectID}
	if query.From != "" {
		from, err := timefmt.ParseDate(query.From, ss.loc)
		if err != nil {
			return nil, errorvalues.Validation("invalid date-from")
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := timefmt.ParseDate(query.To, ss.loc)
		if err != nil {
			return nil, errorvalues.Validation("invalid date-to")
		}
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &to
	}
	sessions, err := ss.sessionsRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	subjects, err := ss.subjectsRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("subjects repository error: " + err.Error())
	}
	views := resolveSessions(sessions, subjects)
	sortNewestFirst(views)
	return views, nil
}

func resolveSessions(sessions []*entity.Session, subjects []*entity.Subject) []SessionView {
	byID := make(map[int]*entity.Subject, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = s
	}
	views := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		view := SessionView{
			Session:      *s,
			SubjectName:  stats.UnknownSubject,
			SubjectColor: stats.UnknownColor,
			Orphaned:     true,
		}
		if subject, ok := byID[s.SubjectID]; ok {
			view.SubjectName = subject.Name
			view.SubjectColor = subject.Color
			view.Orphaned = false
		}
		views = append(views, view)
	}
	return views
}

func sortNewestFirst(views []SessionView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Session.StartTime.After(views[j].Session.StartTime)
	})
}
