package service

import (
	"context"

	"github.com/limbo/studytrack/pkg/entity"
)

type RegisterRequest struct {
	Username        string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6,max=72"`
	ConfirmPassword string
}

type SubjectRequest struct {
	Name  string `validate:"required,max=100"`
	Color string `validate:"required,hexcolor"`
}

// SessionRequest is a manual entry: one date with start and end wall clocks.
type SessionRequest struct {
	SubjectID int    `validate:"required,gt=0"`
	Date      string `validate:"required,isodate"`
	StartTime string `validate:"required,clock"`
	EndTime   string `validate:"required,clock"`
}

// SessionsQuery filters the session list. Empty strings mean no bound; To covers its whole day.
type SessionsQuery struct {
	SubjectID *int
	From      string `validate:"omitempty,isodate"`
	To        string `validate:"omitempty,isodate"`
}

type GoalRequest struct {
	SubjectID   *int    `validate:"omitempty,gt=0"`
	Type        string  `validate:"required,oneof=weekly monthly custom"`
	TargetHours float64 `validate:"gt=0"`
	PeriodStart string  `validate:"required,isodate"`
	PeriodEnd   string  `validate:"required,isodate"`
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type UserServiceI interface {
	// Validates user's credentials, stores the user with a bcrypt hash. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
}

type SubjectsServiceI interface {
	CreateSubject(ctx context.Context, uid int, req SubjectRequest) (*entity.Subject, error)
	UpdateSubject(ctx context.Context, id, uid int, req SubjectRequest) (*entity.Subject, error)
	// Removes subject only; its sessions stay and resolve as unknown
	DeleteSubject(ctx context.Context, id, uid int) error
	// Lists subject cards with total studied time
	ListSubjects(ctx context.Context, uid int) ([]SubjectCard, error)
}

type SessionsServiceI interface {
	CreateSession(ctx context.Context, uid int, req SessionRequest) (*entity.Session, error)
	UpdateSession(ctx context.Context, id, uid int, req SessionRequest) (*entity.Session, error)
	DeleteSession(ctx context.Context, id, uid int) error
	// Lists filtered sessions, newest first
	ListSessions(ctx context.Context, uid int, query SessionsQuery) ([]SessionView, error)
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid int, req GoalRequest) (*entity.Goal, error)
	CompleteGoal(ctx context.Context, id, uid int) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, id, uid int) error
	// Lists goal cards split by status
	ListGoals(ctx context.Context, uid int) (*GoalsOverview, error)
}

type TimerServiceI interface {
	StartTimer(ctx context.Context, uid, subjectID int) (*TimerView, error)
	// Stops the timer. Returns nil session when less than a minute was studied
	StopTimer(ctx context.Context, uid int) (*entity.Session, error)
	TimerStatus(ctx context.Context, uid int) (*TimerView, error)
}

type StatsServiceI interface {
	Dashboard(ctx context.Context, uid int) (*Dashboard, error)
	Summary(ctx context.Context, uid int) (*entity.StudySummary, error)
	Heatmap(ctx context.Context, uid int) ([]entity.HeatmapBucket, error)
	// period is "7", "30" or "all"
	SubjectChart(ctx context.Context, uid int, period string) ([]entity.SubjectTotal, error)
	Profile(ctx context.Context, uid int) (*Profile, error)
}
