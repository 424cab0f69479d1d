// Package recurring contains the recurring obligation scheduler use cases.
package recurring

import (
	"time"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// NextExecution returns the execution date one period after current.
//
// Monthly templates land on dayOfMonth in the following month, clamped to the
// last valid day of shorter months (Jan 31 advances to Feb 28, never Mar 3).
// Quarterly and yearly advances clamp the same way so a Feb 29 anchor stays
// at month end instead of rolling over.
func NextExecution(current time.Time, frequency entity.Frequency, dayOfMonth *int) time.Time {
	switch frequency {
	case entity.FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case entity.FrequencyBiweekly:
		return current.AddDate(0, 0, 14)
	case entity.FrequencyMonthly:
		day := current.Day()
		if dayOfMonth != nil {
			day = *dayOfMonth
		}
		return dateInMonth(current.Year(), current.Month()+1, day, current.Location())
	case entity.FrequencyQuarterly:
		return dateInMonth(current.Year(), current.Month()+3, current.Day(), current.Location())
	case entity.FrequencyYearly:
		return dateInMonth(current.Year()+1, current.Month(), current.Day(), current.Location())
	}
	return current
}

// InitialExecution derives the first due date for a newly created template
// when the caller does not supply one explicitly.
//
// Weekly and biweekly templates land on the next occurrence of dayOfWeek
// (today counts). Monthly templates land on this month's dayOfMonth when it
// has not passed yet, otherwise next month's. Quarterly and yearly templates
// are due immediately and advance from there.
func InitialExecution(now time.Time, frequency entity.Frequency, dayOfMonth, dayOfWeek *int) time.Time {
	today := startOfDay(now)

	switch frequency {
	case entity.FrequencyWeekly, entity.FrequencyBiweekly:
		if dayOfWeek == nil {
			return today
		}
		offset := (*dayOfWeek - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, offset)
	case entity.FrequencyMonthly:
		day := today.Day()
		if dayOfMonth != nil {
			day = *dayOfMonth
		}
		candidate := dateInMonth(today.Year(), today.Month(), day, today.Location())
		if candidate.Before(today) {
			candidate = dateInMonth(today.Year(), today.Month()+1, day, today.Location())
		}
		return candidate
	}
	return today
}

// MonthBounds returns the first and last day of the given calendar month.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// dateInMonth builds a date in the given month with the day clamped to the
// month's length. The month may be out of range; time.Date normalizes it.
func dateInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
