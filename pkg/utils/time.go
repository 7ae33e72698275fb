package utils

import "time"

// GetDayStartAndEnd returns 00:00:00 and 23:59:59 of the given date.
func GetDayStartAndEnd(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Second)
	return start, end
}

func GetMonthStartAndEnd(date time.Time) (time.Time, time.Time) {
	startOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	nextMonth := startOfMonth.AddDate(0, 1, 0)
	endOfMonth := nextMonth.Add(-time.Second)
	return startOfMonth, endOfMonth
}
