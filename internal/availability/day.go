package availability

import "time"

// A calendar day spans [00:00:00, 23:59:59]. A span clipped at the end of the
// day stops at 23:59:59, so the last second is not counted.
const lastSecondOfDay = 24*time.Hour - time.Second

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(lastSecondOfDay)
}

func sameDay(a, b time.Time) bool {
	return startOfDay(a).Equal(startOfDay(b))
}

func nextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}

func previousDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -1)
}

func dayBounds(day time.Time) Interval {
	return Interval{Start: startOfDay(day), End: endOfDay(day)}
}

// DaySegment is the part of a requested window falling on one calendar day.
type DaySegment struct {
	Day  time.Time
	Span Interval
}

func newDaySegment(day time.Time, span Interval) DaySegment {
	return DaySegment{Day: startOfDay(day), Span: span}
}

func (d DaySegment) Bounds() Interval {
	return dayBounds(d.Day)
}

func (d DaySegment) Duration() time.Duration {
	return d.Span.Duration()
}
