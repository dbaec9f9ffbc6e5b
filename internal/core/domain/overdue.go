package domain

import (
	"sort"
	"time"
)

// DaysOverdue returns the calendar-day difference between now and due, or
// 0 when due is today or in the future. The comparison is date-only;
// time of day never makes a task overdue.
func DaysOverdue(due, now time.Time) int {
	d := calendarDay(due)
	n := calendarDay(now)
	if !d.Before(n) {
		return 0
	}
	return int(n.Sub(d).Hours() / 24)
}

// Overdue filters tasks down to the ones past their due date and still
// active, sorted most-overdue-first. The sort is stable so equally overdue
// tasks keep their input order.
func Overdue(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != TaskStatusActive || t.DueDate == nil {
			continue
		}
		if DaysOverdue(*t.DueDate, now) == 0 {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	return out
}

// calendarDay normalizes to midnight UTC so day arithmetic is immune to
// DST transitions in the source location.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
