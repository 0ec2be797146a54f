// Package stats contains the read-side aggregations over study sessions.
// Every function is pure and recomputes from the slice it is given.
package stats

import (
	"math"
	"time"

	"github.com/limbo/studytrack/pkg/entity"
	"github.com/limbo/studytrack/pkg/timefmt"
)

const (
	HeatmapDays = 30
	day         = 24 * time.Hour
)

// RoundHours converts minutes to hours rounded to one decimal place.
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// RollingMinutes sums durations of sessions started within [now-days, now].
func RollingMinutes(sessions []*entity.Session, now time.Time, days int) int {
	since := now.Add(-time.Duration(days) * day)
	total := 0
	for _, s := range sessions {
		if s.StartTime.Before(since) || s.StartTime.After(now) {
			continue
		}
		total += s.DurationMinutes
	}
	return total
}

func TotalMinutes(sessions []*entity.Session) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMinutes
	}
	return total
}

// SubjectMinutes is one group of the per-subject totals.
type SubjectMinutes struct {
	SubjectID int
	Minutes   int
}

// TotalsBySubject groups durations by subject id, ordered by the first
// session seen for each subject.
func TotalsBySubject(sessions []*entity.Session) []SubjectMinutes {
	index := make(map[int]int)
	totals := make([]SubjectMinutes, 0)
	for _, s := range sessions {
		i, ok := index[s.SubjectID]
		if !ok {
			i = len(totals)
			index[s.SubjectID] = i
			totals = append(totals, SubjectMinutes{SubjectID: s.SubjectID})
		}
		totals[i].Minutes += s.DurationMinutes
	}
	return totals
}

// MostStudied returns the subject with the largest total. On equal totals the
// smaller subject id wins.
func MostStudied(sessions []*entity.Session) (SubjectMinutes, bool) {
	var best SubjectMinutes
	found := false
	for _, t := range TotalsBySubject(sessions) {
		if t.Minutes > best.Minutes || (found && t.Minutes == best.Minutes && t.SubjectID < best.SubjectID) {
			best = t
			found = true
		}
	}
	return best, found
}

// Streak counts consecutive calendar days with at least one session, walking
// back from the day of now. An empty today does not break the streak.
func Streak(sessions []*entity.Session, now time.Time) int {
	days := studyDays(sessions, now.Location())
	today := timefmt.StartOfDay(now)
	streak := 0
	for check := today; ; check = check.AddDate(0, 0, -1) {
		if _, ok := days[timefmt.FormatDate(check)]; ok {
			streak++
			continue
		}
		if check.Equal(today) {
			continue
		}
		return streak
	}
}

func studyDays(sessions []*entity.Session, loc *time.Location) map[string]struct{} {
	days := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		days[timefmt.FormatDate(s.StartTime.In(loc))] = struct{}{}
	}
	return days
}

// TierFor classifies one day of study by whole hours: <1h, [1,2), [2,3), [3,4), >=4h.
func TierFor(minutes int) entity.HeatmapTier {
	hours := float64(minutes) / 60
	switch {
	case hours >= 4:
		return entity.TierMax
	case hours >= 3:
		return entity.TierHigh
	case hours >= 2:
		return entity.TierMedium
	case hours >= 1:
		return entity.TierLow
	default:
		return entity.TierNone
	}
}

// Heatmap buckets the trailing HeatmapDays calendar days ending today, oldest first.
func Heatmap(sessions []*entity.Session, now time.Time) []entity.HeatmapBucket {
	today := timefmt.StartOfDay(now)
	buckets := make([]entity.HeatmapBucket, HeatmapDays)
	index := make(map[string]int, HeatmapDays)
	for i := 0; i < HeatmapDays; i++ {
		date := timefmt.FormatDate(today.AddDate(0, 0, i-HeatmapDays+1))
		buckets[i].Date = date
		index[date] = i
	}
	for _, s := range sessions {
		if i, ok := index[timefmt.FormatDate(s.StartTime.In(now.Location()))]; ok {
			buckets[i].Minutes += s.DurationMinutes
		}
	}
	for i := range buckets {
		buckets[i].Tier = TierFor(buckets[i].Minutes)
	}
	return buckets
}
