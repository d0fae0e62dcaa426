package availability

import (
	"strings"
	"time"

	"github.com/nikmy/timekeeper/pkg/errors"
)

// DateTimeLayout is the wire format of request and response timestamps:
// an ISO-8601 local date-time without offset.
const DateTimeLayout = "2006-01-02T15:04:05"

var parseLayouts = [...]string{
	DateTimeLayout, // fractional seconds are accepted after the seconds field
	"2006-01-02T15:04",
}

type TimeWindow struct {
	Start time.Time
	End   time.Time
}

func (w TimeWindow) Validate() error {
	if w.End.Before(w.Start) {
		return invalidWindow(errors.Errorf(
			"end %s is before start %s",
			w.End.Format(DateTimeLayout), w.Start.Format(DateTimeLayout),
		))
	}
	return nil
}

func (w TimeWindow) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}

// ParseWindow parses both bounds as wall-clock date-times in UTC.
func ParseWindow(start, end string) (TimeWindow, error) {
	s, err := ParseDateTime(start)
	if err != nil {
		return TimeWindow{}, invalidWindow(errors.WrapFail(err, "parse start"))
	}

	e, err := ParseDateTime(end)
	if err != nil {
		return TimeWindow{}, invalidWindow(errors.WrapFail(err, "parse end"))
	}

	w := TimeWindow{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

func ParseDateTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.Error("empty date-time")
	}

	var lastErr error
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
