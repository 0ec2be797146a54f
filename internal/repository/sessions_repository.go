package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/entity"
)

type SessionsRepository struct {
	store *Store
}

func NewSessionsRepo(store *Store) *SessionsRepository {
	return &SessionsRepository{
		store: store,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.Session) (int, error) {
	if session == nil {
		return 0, errors.New("session is nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	id := sr.store.sessions.insert(func(id int) entity.Session {
		s := *session
		s.ID = id
		return s
	})
	return id, nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id int) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	session, ok := sr.store.sessions.get(id)
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return &session, nil
}

func (sr *SessionsRepository) List(ctx context.Context, filter SessionFilter) ([]*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	sessions := make([]*entity.Session, 0)
	sr.store.sessions.each(func(s entity.Session) {
		if filter.match(&s) {
			sessions = append(sessions, &s)
		}
	})
	return sessions, nil
}

func (sr *SessionsRepository) Update(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	current, ok := sr.store.sessions.get(session.ID)
	if !ok {
		return errorvalues.ErrSessionNotFound
	}
	current.SubjectID = session.SubjectID
	current.StartTime = session.StartTime
	current.EndTime = session.EndTime
	current.DurationMinutes = session.DurationMinutes
	sr.store.sessions.replace(session.ID, current)
	return nil
}

func (sr *SessionsRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	if !sr.store.sessions.remove(id) {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}
