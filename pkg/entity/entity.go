package entity

import (
	"time"
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Subject struct {
	ID     int    `json:"subject_id"`
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color_code"`
}

// Session is one recorded study interval. SubjectID may point to a deleted subject.
// DurationMinutes is fixed at write time.
type Session struct {
	ID              int
	UserID          int
	SubjectID       int
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}

type GoalType string

const (
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalCustom  GoalType = "custom"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// Goal targets a number of study hours over [PeriodStart, PeriodEnd].
// A nil SubjectID means all subjects count.
type Goal struct {
	ID          int
	UserID      int
	SubjectID   *int
	Type        GoalType
	TargetHours float64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      GoalStatus
}

type GoalProgress struct {
	GoalID        int     `json:"goal_id"`
	Minutes       int     `json:"minutes"`
	Hours         float64 `json:"hours"`
	Percentage    int     `json:"percentage"`
	ProgressClass string  `json:"progress_class"`
	DaysRemaining int     `json:"days_remaining"`
	Expired       bool    `json:"expired"`
}

type SubjectTotal struct {
	SubjectID int     `json:"subject_id"`
	Name      string  `json:"name"`
	Color     string  `json:"color_code"`
	Minutes   int     `json:"minutes"`
	Hours     float64 `json:"hours"`
}

type HeatmapTier int

const (
	TierNone HeatmapTier = iota + 1
	TierLow
	TierMedium
	TierHigh
	TierMax
)

type HeatmapBucket struct {
	Date    string      `json:"date"`
	Minutes int         `json:"minutes"`
	Tier    HeatmapTier `json:"tier"`
}

type StudySummary struct {
	TotalMinutes       int    `json:"total_minutes"`
	TotalHours         int    `json:"total_hours"`
	StudyDays          int    `json:"study_days"`
	AvgDailyMinutes    int    `json:"avg_daily_minutes"`
	MostStudiedSubject string `json:"most_studied_subject"`
	Streak             int    `json:"streak"`
}

type TimerStatus struct {
	Running        bool      `json:"running"`
	SubjectID      int       `json:"subject_id,omitempty"`
	StartedAt      time.Time `json:"-"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
}
