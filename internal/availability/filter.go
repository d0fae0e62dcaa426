package availability

// unavailableOnDay returns the candidates that already have something on the
// day and would go over capacity with the requested part of the window.
// Candidates with nothing booked that day are never excluded here, however
// long the request is.
func unavailableOnDay(segment DaySegment, candidates []User, booked workload, capacity Capacity) userSet {
	requested := capacity.Hours(segment.Duration())

	out := make(userSet)
	for _, u := range candidates {
		hours, ok := booked[u.ID]
		if !ok {
			continue
		}

		if capacity.Exceeded(hours, requested) {
			out.add(u.ID)
		}
	}

	return out
}

// bookedWithin returns every attendee of every event overlapping the interval,
// however short the overlap.
func bookedWithin(interval Interval, events []Event) userSet {
	out := make(userSet)
	for _, ev := range events {
		if !interval.Overlaps(ev.Interval()) {
			continue
		}

		for _, id := range ev.Attendees {
			out.add(id)
		}
	}

	return out
}
