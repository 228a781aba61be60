// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// TodayStr returns today's date as YYYY-MM-DD
func TodayStr() string {
	return time.Now().Format(DateLayout)
}

// ValidDateStr reports whether s is a YYYY-MM-DD calendar date
func ValidDateStr(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
