// Package availability decides which users are free for a date-time window.
//
// A window is split by calendar day. On the first and last day a user is
// booked out when the hours they already have that day plus the hours the
// window takes on that day exceed the daily cap. For windows spanning more
// than two days, any event on the days in between books its attendees out
// for the whole window.
package availability

import (
	"context"
	"slices"

	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/logger"
)

// Report is the result of a computation together with what was noticed on the way.
type Report struct {
	Result Result
	Shape  string

	// Skipped holds ids of events that had no attendees.
	Skipped []string
}

// Compute runs the availability check over an already read snapshot. It does
// not modify the snapshot.
func Compute(window TimeWindow, snap Snapshot, capacity Capacity) Report {
	p := splitRange(window)

	excluded := make(userSet)
	candidates := snap.Users

	if p.interior != nil {
		excluded.merge(bookedWithin(*p.interior, snap.Events))
		candidates = excluded.without(candidates)
	}

	var skipped []string
	for _, day := range p.days {
		booked, bad := hoursBookedPerUser(day.Day, snap.Events, capacity)
		skipped = append(skipped, bad...)
		excluded.merge(unavailableOnDay(day, candidates, booked, capacity))
	}

	slices.Sort(skipped)

	return Report{
		Result:  aggregate(window, snap.Users, excluded),
		Shape:   p.shape.String(),
		Skipped: slices.Compact(skipped),
	}
}

type Engine struct {
	log      logger.Logger
	capacity Capacity
	source   SnapshotReader
}

func New(log logger.Logger, capacity Capacity, source SnapshotReader) *Engine {
	return &Engine{
		log:      log.With("availability"),
		capacity: capacity,
		source:   source,
	}
}

// CheckRaw parses the bounds and runs Check.
func (e *Engine) CheckRaw(ctx context.Context, start, end string) (*Result, error) {
	window, err := ParseWindow(start, end)
	if err != nil {
		return nil, err
	}

	return e.Check(ctx, window)
}

// Check reads one snapshot and computes availability for the window.
func (e *Engine) Check(ctx context.Context, window TimeWindow) (*Result, error) {
	err := window.Validate()
	if err != nil {
		return nil, err
	}

	snap, err := e.source.ReadSnapshot(ctx, window)
	if err != nil {
		return nil, collaboratorUnavailable(errors.WrapFail(err, "read snapshot"))
	}

	report := Compute(window, snap, e.capacity)

	if len(report.Skipped) > 0 {
		e.log.Warn(&Error{
			Kind: KindMalformedEvent,
			Err:  errors.Errorf("events without attendees ignored: %v", report.Skipped),
		})
	}

	e.log.Debugf(
		"%s window [%s, %s]: %d available, %d unavailable",
		report.Shape,
		FormatDateTime(window.Start),
		FormatDateTime(window.End),
		len(report.Result.Available),
		len(report.Result.Unavailable),
	)

	return &report.Result, nil
}
