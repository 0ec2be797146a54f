package stats

import (
	"math"
	"time"

	"github.com/limbo/studytrack/pkg/entity"
)

// InPeriod reports whether a session counts toward goal. The end date is
// inclusive for the whole day.
func InPeriod(goal *entity.Goal, s *entity.Session) bool {
	if s.UserID != goal.UserID {
		return false
	}
	if goal.SubjectID != nil && s.SubjectID != *goal.SubjectID {
		return false
	}
	end := goal.PeriodEnd.AddDate(0, 0, 1)
	return !s.StartTime.Before(goal.PeriodStart) && s.StartTime.Before(end)
}

// GoalProgress computes progress of goal at now. Percentage is clamped to [0, 100].
func GoalProgress(goal *entity.Goal, sessions []*entity.Session, now time.Time) entity.GoalProgress {
	minutes := 0
	for _, s := range sessions {
		if InPeriod(goal, s) {
			minutes += s.DurationMinutes
		}
	}
	hours := RoundHours(minutes)
	percentage := 0
	if goal.TargetHours > 0 {
		percentage = int(math.Round(hours / goal.TargetHours * 100))
	}
	percentage = min(max(percentage, 0), 100)
	daysRemaining := int(math.Ceil(goal.PeriodEnd.Sub(now).Hours() / 24))
	return entity.GoalProgress{
		GoalID:        goal.ID,
		Minutes:       minutes,
		Hours:         hours,
		Percentage:    percentage,
		ProgressClass: progressClass(percentage),
		DaysRemaining: daysRemaining,
		Expired:       daysRemaining <= 0,
	}
}

func progressClass(percentage int) string {
	switch {
	case percentage >= 80:
		return "high"
	case percentage >= 50:
		return "medium"
	default:
		return "low"
	}
}
