package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
	now  func() time.Time
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
		now:  time.Now,
	}
}

func (us *UserService) WithClock(now func() time.Time) *UserService {
	us.now = now
	return us
}

// Register keeps only a bcrypt hash of the password.
func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errorvalues.ErrPasswordMismatch
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    us.now(),
	}
	id, err := us.repo.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user.ID = id
	return &user, nil
}

// Login reports unknown names and wrong passwords alike.
func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = CompareHash(user.PasswordHash, password); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
