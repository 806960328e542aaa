package utils

import (
	"fmt"
	"time"
)

const ShortDashDateLayout = "2006-01-02"

// GenerateDates returns every date from startDate to endDate inclusive,
// stepping by interval. Used to align sparse price series onto a regular
// grid for portfolio history charts.
func GenerateDates(startDate, endDate time.Time, interval time.Duration) ([]time.Time, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("endDate must be after startDate")
	}

	var dates []time.Time
	for currentDate := startDate; currentDate.Before(endDate) || currentDate.Equal(endDate); currentDate = currentDate.Add(interval) {
		dates = append(dates, currentDate)
	}

	return dates, nil
}

// TruncateToDay drops the time-of-day component in UTC.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
