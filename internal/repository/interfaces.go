package repository

import (
	"context"
	"time"

	"github.com/limbo/studytrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. Returns assigned id
	Create(ctx context.Context, user *entity.User) (int, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by id. Can be used for authorization middleware
	FindByID(ctx context.Context, id int) (*entity.User, error)
}

type SubjectsRepositoryI interface {
	// Creates new subject. Only UserID, Name and Color are read
	Create(ctx context.Context, subject *entity.Subject) (int, error)
	GetByID(ctx context.Context, id int) (*entity.Subject, error)
	// Lists subjects owned by user in creation order
	ListByUser(ctx context.Context, uid int) ([]*entity.Subject, error)
	// Overwrites Name and Color of subject with subject.ID
	Update(ctx context.Context, subject *entity.Subject) error
	// Deletes subject. Sessions referencing it are left as they are
	Delete(ctx context.Context, id int) error
}

type SessionsRepositoryI interface {
	Create(ctx context.Context, session *entity.Session) (int, error)
	GetByID(ctx context.Context, id int) (*entity.Session, error)
	// Lists sessions matching filter in creation order
	List(ctx context.Context, filter SessionFilter) ([]*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id int) error
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.Goal) (int, error)
	GetByID(ctx context.Context, id int) (*entity.Goal, error)
	ListByUser(ctx context.Context, uid int) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id int) error
}

// SessionFilter selects sessions by owner and, optionally, subject and
// start-time bounds. Both bounds are inclusive.
type SessionFilter struct {
	UserID    int
	SubjectID *int
	From      *time.Time
	To        *time.Time
}

func (f SessionFilter) match(s *entity.Session) bool {
	if s.UserID != f.UserID {
		return false
	}
	if f.SubjectID != nil && s.SubjectID != *f.SubjectID {
		return false
	}
	if f.From != nil && s.StartTime.Before(*f.From) {
		return false
	}
	if f.To != nil && s.StartTime.After(*f.To) {
		return false
	}
	return true
}
