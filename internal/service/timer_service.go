package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/timer"
	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

// TimerService keeps one stopwatch per user and turns finished laps of at
// least a minute into sessions.
type TimerService struct {
	sessionsRepo repository.SessionsRepositoryI
	subjectsRepo repository.SubjectsRepositoryI
	mu           sync.Mutex
	timers       map[int]*timer.Stopwatch
	opts         []timer.Option
}

func NewTimerService(sessionsRepo repository.SessionsRepositoryI, subjectsRepo repository.SubjectsRepositoryI, opts ...timer.Option) *TimerService {
	if sessionsRepo == nil || subjectsRepo == nil {
		log.Fatal("on timer service provided nil repos")
	}
	return &TimerService{
		sessionsRepo: sessionsRepo,
		subjectsRepo: subjectsRepo,
		timers:       make(map[int]*timer.Stopwatch),
		opts:         opts,
	}
}

func (ts *TimerService) stopwatch(uid int) *timer.Stopwatch {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	sw, ok := ts.timers[uid]
	if !ok {
		sw = timer.New(ts.opts...)
		ts.timers[uid] = sw
	}
	return sw
}

func (ts *TimerService) StartTimer(ctx context.Context, uid, subjectID int) (*TimerView, error) {
	if subjectID <= 0 {
		return nil, errorvalues.ErrNoSubjectSelected
	}
	if _, err := ownedSubject(ctx, ts.subjectsRepo, subjectID, uid); err != nil {
		return nil, err
	}
	sw := ts.stopwatch(uid)
	if err := sw.Start(subjectID); err != nil {
		return nil, err
	}
	return timerView(sw.Status()), nil
}

func (ts *TimerService) StopTimer(ctx context.Context, uid int) (*entity.Session, error) {
	lap, err := ts.stopwatch(uid).Stop()
	if err != nil {
		return nil, err
	}
	start, end := lap.Start.Truncate(time.Second), lap.End.Truncate(time.Second)
	minutes := DurationMinutes(start, end)
	if minutes < 1 {
		return nil, nil
	}
	session := entity.Session{
		UserID:          uid,
		SubjectID:       lap.SubjectID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: minutes,
	}
	id, err := ts.sessionsRepo.Create(ctx, &session)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	session.ID = id
	return &session, nil
}

func (ts *TimerService) TimerStatus(ctx context.Context, uid int) (*TimerView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return timerView(ts.stopwatch(uid).Status()), nil
}

// StopAll halts every running stopwatch without recording sessions.
func (ts *TimerService) StopAll() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for uid, sw := range ts.timers {
		if _, err := sw.Stop(); err == nil {
			slog.Info("timer stopped on shutdown", slog.Int("uid", uid))
		}
	}
}

func timerView(status entity.TimerStatus) *TimerView {
	return &TimerView{
		Status:  status,
		Display: timefmt.FormatStopwatch(status.ElapsedSeconds),
	}
}
