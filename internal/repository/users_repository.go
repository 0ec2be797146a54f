package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/entity"
)

type UsersRepository struct {
	store *Store
}

func NewUsersRepo(store *Store) *UsersRepository {
	return &UsersRepository{
		store: store,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (int, error) {
	if user == nil {
		return 0, errors.New("user is nil")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	ur.store.mu.Lock()
	defer ur.store.mu.Unlock()
	exists := false
	ur.store.users.each(func(u entity.User) {
		if u.Username == user.Username {
			exists = true
		}
	})
	if exists {
		return 0, errorvalues.ErrUserExists
	}
	id := ur.store.users.insert(func(id int) entity.User {
		u := *user
		u.ID = id
		return u
	})
	return id, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	var found *entity.User
	ur.store.users.each(func(u entity.User) {
		if found == nil && u.Username == name {
			found = &u
		}
	})
	if found == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	return found, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ur.store.mu.RLock()
	defer ur.store.mu.RUnlock()
	user, ok := ur.store.users.get(id)
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &user, nil
}
