package availability

import "time"

// Interval is a time range used for overlap tests.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps compares endpoints strictly, so touching intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Clip returns the part of i inside bounds, or false when nothing is left.
func (i Interval) Clip(bounds Interval) (Interval, bool) {
	clipped := i
	if clipped.Start.Before(bounds.Start) {
		clipped.Start = bounds.Start
	}
	if clipped.End.After(bounds.End) {
		clipped.End = bounds.End
	}

	if clipped.End.Before(clipped.Start) {
		return Interval{}, false
	}
	return clipped, true
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
