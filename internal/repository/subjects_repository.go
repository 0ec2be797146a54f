package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/entity"
)

type SubjectsRepository struct {
	store *Store
}

func NewSubjectsRepo(store *Store) *SubjectsRepository {
	return &SubjectsRepository{
		store: store,
	}
}

func (sr *SubjectsRepository) Create(ctx context.Context, subject *entity.Subject) (int, error) {
	if subject == nil {
		return 0, errors.New("subject is nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	id := sr.store.subjects.insert(func(id int) entity.Subject {
		s := *subject
		s.ID = id
		return s
	})
	return id, nil
}

func (sr *SubjectsRepository) GetByID(ctx context.Context, id int) (*entity.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	subject, ok := sr.store.subjects.get(id)
	if !ok {
		return nil, errorvalues.ErrSubjectNotFound
	}
	return &subject, nil
}

func (sr *SubjectsRepository) ListByUser(ctx context.Context, uid int) ([]*entity.Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sr.store.mu.RLock()
	defer sr.store.mu.RUnlock()
	subjects := make([]*entity.Subject, 0)
	sr.store.subjects.each(func(s entity.Subject) {
		if s.UserID == uid {
			subjects = append(subjects, &s)
		}
	})
	return subjects, nil
}

func (sr *SubjectsRepository) Update(ctx context.Context, subject *entity.Subject) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	current, ok := sr.store.subjects.get(subject.ID)
	if !ok {
		return errorvalues.ErrSubjectNotFound
	}
	current.Name = subject.Name
	current.Color = subject.Color
	sr.store.subjects.replace(subject.ID, current)
	return nil
}

func (sr *SubjectsRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sr.store.mu.Lock()
	defer sr.store.mu.Unlock()
	if !sr.store.subjects.remove(id) {
		return errorvalues.ErrSubjectNotFound
	}
	return nil
}
