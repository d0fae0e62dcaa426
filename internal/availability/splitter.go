package availability

type shape int

const (
	shapeSameDay shape = iota + 1
	shapeAdjacentDays
	shapeMultiDay
)

func (s shape) String() string {
	switch s {
	case shapeSameDay:
		return "same-day"
	case shapeAdjacentDays:
		return "adjacent-day"
	case shapeMultiDay:
		return "multi-day"
	default:
		return "unknown"
	}
}

// plan is what has to be checked for a window: capacity on each boundary
// day, and for multi-day windows an all-or-nothing check of the days between.
type plan struct {
	shape    shape
	days     []DaySegment
	interior *Interval
}

func splitRange(w TimeWindow) plan {
	switch {
	case sameDay(w.Start, w.End):
		return plan{
			shape: shapeSameDay,
			days:  []DaySegment{newDaySegment(w.Start, w.Interval())},
		}

	case nextDay(w.Start).Equal(startOfDay(w.End)):
		return plan{
			shape: shapeAdjacentDays,
			days:  boundaryDays(w),
		}

	default:
		interior := Interval{
			Start: nextDay(w.Start),
			End:   endOfDay(previousDay(w.End)),
		}
		return plan{
			shape:    shapeMultiDay,
			days:     boundaryDays(w),
			interior: &interior,
		}
	}
}

func boundaryDays(w TimeWindow) []DaySegment {
	return []DaySegment{
		newDaySegment(w.Start, Interval{Start: w.Start, End: endOfDay(w.Start)}),
		newDaySegment(w.End, Interval{Start: startOfDay(w.End), End: w.End}),
	}
}
