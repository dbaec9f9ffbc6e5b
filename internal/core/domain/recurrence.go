package domain

import "time"

// NextOccurrence computes the due date that follows lastDue under rule.
// It is pure: no clock, no side effects.
//
// It returns nil when the series cannot regenerate: no last due date, a
// non-positive interval, an unknown frequency, or a computed date strictly
// after the rule's end date.
func NextOccurrence(lastDue *time.Time, rule RecurrenceRule) *time.Time {
	if lastDue == nil || rule.Interval <= 0 {
		return nil
	}

	var next time.Time
	switch rule.Frequency {
	case FrequencyDaily:
		next = lastDue.AddDate(0, 0, rule.Interval)
	case FrequencyWeekly:
		next = lastDue.AddDate(0, 0, rule.Interval*7)
	case FrequencyMonthly:
		next = addMonthsClamped(*lastDue, rule.Interval)
	default:
		return nil
	}

	if rule.EndDate != nil && next.After(*rule.EndDate) {
		return nil
	}
	return &next
}

// addMonthsClamped adds months calendar months, clamping the day of month
// to the last valid day of the target month. Jan 31 + 1 month is Feb 28
// (or Feb 29 in a leap year), never an overflow into March, which is what
// plain AddDate would produce.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	hour, min, sec := t.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}
