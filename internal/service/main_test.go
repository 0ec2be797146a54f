package service_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/limbo/studytrack/internal/repository"
	"github.com/limbo/studytrack/internal/service"
	"github.com/limbo/studytrack/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

var (
	fixedNow = time.Date(2024, 10, 25, 15, 0, 0, 0, time.UTC)
	clock    = func() time.Time { return fixedNow }
)

type fixture struct {
	store    *repository.Store
	users    *repository.UsersRepository
	subjects *repository.SubjectsRepository
	sessions *repository.SessionsRepository
	goals    *repository.GoalsRepository
	uid      int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewStore()
	f := &fixture{
		store:    store,
		users:    repository.NewUsersRepo(store),
		subjects: repository.NewSubjectsRepo(store),
		sessions: repository.NewSessionsRepo(store),
		goals:    repository.NewGoalsRepo(store),
	}
	uid, err := f.users.Create(context.Background(), &entity.User{Username: "demo", Email: "demo@focusflow.com"})
	if err != nil {
		t.Fatal(err)
	}
	f.uid = uid
	return f
}

func (f *fixture) subject(t *testing.T, name string) int {
	t.Helper()
	id, err := f.subjects.Create(context.Background(), &entity.Subject{UserID: f.uid, Name: name, Color: "#3b82f6"})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func (f *fixture) session(t *testing.T, subjectID int, start time.Time, minutes int) int {
	t.Helper()
	id, err := f.sessions.Create(context.Background(), &entity.Session{
		UserID:          f.uid,
		SubjectID:       subjectID,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	})
	if err != nil {
		t.Fatal(err)
	}
	return id
}

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
)

// sessionsRepoMock fails every call while in stateDBError.
type sessionsRepoMock struct {
	state mockState
}

var errDB = errors.New("db error")

func (m *sessionsRepoMock) Create(ctx context.Context, session *entity.Session) (int, error) {
	if m.state == stateDBError {
		return 0, errDB
	}
	return 1, nil
}

func (m *sessionsRepoMock) GetByID(ctx context.Context, id int) (*entity.Session, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return &entity.Session{ID: id, UserID: 1}, nil
}

func (m *sessionsRepoMock) List(ctx context.Context, filter repository.SessionFilter) ([]*entity.Session, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return []*entity.Session{}, nil
}

func (m *sessionsRepoMock) Update(ctx context.Context, session *entity.Session) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}

func (m *sessionsRepoMock) Delete(ctx context.Context, id int) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}
