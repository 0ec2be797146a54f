package service

import (
	"github.com/limbo/studytrack/pkg/entity"
)

type SubjectCard struct {
	Subject      entity.Subject
	TotalMinutes int
	Total        string
}

// SessionView is a session with its subject resolved. Orphaned is set when
// the subject was deleted.
type SessionView struct {
	Session      entity.Session
	SubjectName  string
	SubjectColor string
	Orphaned     bool
}

type GoalCard struct {
	Goal        entity.Goal
	SubjectName string
	Title       string
	Progress    entity.GoalProgress
}

type GoalsOverview struct {
	Active    []GoalCard
	Completed []GoalCard
}

type TimerView struct {
	Status  entity.TimerStatus
	Display string
}

type Dashboard struct {
	Last7DaysMinutes  int
	Last30DaysMinutes int
	ActiveGoals       int
	RecentSessions    []SessionView
}

type Profile struct {
	User          entity.User
	TotalHours    float64
	SessionsCount int
	SubjectsCount int
}
