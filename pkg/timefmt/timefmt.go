// Package timefmt holds the textual forms timestamps and durations are exchanged in.
package timefmt

import (
	"fmt"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
)

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, s, loc)
}

// ParseDate parses "YYYY-MM-DD" in loc, returning midnight of that day.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// CombineDateClock joins a date and a wall clock ("HH:MM" or "HH:MM:SS").
func CombineDateClock(date, clock string, loc *time.Location) (time.Time, error) {
	if len(clock) == len(ClockLayout) {
		clock += ":00"
	}
	return ParseDateTime(date+" "+clock, loc)
}

// StartOfDay truncates t to local midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDuration renders minutes as "2h 5m" or "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatStopwatch renders elapsed seconds as HH:MM:SS.
func FormatStopwatch(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
