package stats

import (
	"time"

	"github.com/limbo/studytrack/pkg/entity"
)

const (
	UnknownSubject  = "Unknown"
	UnknownColor    = "#888"
	NoSubject       = "-"
	AllSubjectsName = "All Subjects"
)

// Summary builds the statistics page figures. names resolves subject ids;
// a missing id renders as NoSubject.
func Summary(sessions []*entity.Session, names map[int]string, now time.Time) entity.StudySummary {
	total := TotalMinutes(sessions)
	days := len(studyDays(sessions, now.Location()))
	avg := 0
	if days > 0 {
		avg = total / days
	}
	most := NoSubject
	if best, ok := MostStudied(sessions); ok {
		if name, found := names[best.SubjectID]; found {
			most = name
		}
	}
	return entity.StudySummary{
		TotalMinutes:       total,
		TotalHours:         total / 60,
		StudyDays:          days,
		AvgDailyMinutes:    avg,
		MostStudiedSubject: most,
		Streak:             Streak(sessions, now),
	}
}

// SubjectBreakdown totals hours per existing subject for sessions started at
// or after since (all sessions when since is nil). Orphaned sessions are skipped.
func SubjectBreakdown(sessions []*entity.Session, subjects []*entity.Subject, since *time.Time) []entity.SubjectTotal {
	byID := make(map[int]*entity.Subject, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = s
	}
	filtered := make([]*entity.Session, 0, len(sessions))
	for _, s := range sessions {
		if since != nil && s.StartTime.Before(*since) {
			continue
		}
		if _, ok := byID[s.SubjectID]; !ok {
			continue
		}
		filtered = append(filtered, s)
	}
	groups := TotalsBySubject(filtered)
	result := make([]entity.SubjectTotal, 0, len(groups))
	for _, g := range groups {
		subject := byID[g.SubjectID]
		result = append(result, entity.SubjectTotal{
			SubjectID: g.SubjectID,
			Name:      subject.Name,
			Color:     subject.Color,
			Minutes:   g.Minutes,
			Hours:     RoundHours(g.Minutes),
		})
	}
	return result
}
