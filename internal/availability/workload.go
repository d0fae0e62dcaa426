package availability

import "time"

// workload maps a user to the whole hours already booked on one day.
// Presence matters: a user with events totalling zero hours is still listed.
type workload map[UserID]int

// hoursBookedPerUser sums, per primary attendee, the hours of every event
// overlapping the calendar day, each event clipped to the day and truncated
// to whole hours. Events without attendees are skipped and returned by id.
func hoursBookedPerUser(day time.Time, events []Event, capacity Capacity) (workload, []string) {
	bounds := dayBounds(day)

	booked := make(workload)
	var skipped []string

	for _, ev := range events {
		span := ev.Interval()
		if !bounds.Overlaps(span) {
			continue
		}

		owner, ok := ev.PrimaryAttendee()
		if !ok {
			skipped = append(skipped, ev.ID)
			continue
		}

		clipped, ok := span.Clip(bounds)
		if !ok {
			continue
		}

		booked[owner] += capacity.Hours(clipped.Duration())
	}

	return booked, skipped
}
