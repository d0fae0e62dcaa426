package availability

import (
	"context"
	"time"
)

type UserID string

type User struct {
	ID          UserID `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

type Event struct {
	ID        string
	Start     time.Time
	End       time.Time
	Attendees []UserID
}

func (e Event) Interval() Interval {
	return Interval{Start: e.Start, End: e.End}
}

// PrimaryAttendee is the user an event's hours are attributed to: the first
// one listed. Events without attendees have none.
func (e Event) PrimaryAttendee() (UserID, bool) {
	if len(e.Attendees) == 0 {
		return "", false
	}
	return e.Attendees[0], true
}

// Snapshot is everything the engine reads for a single request.
type Snapshot struct {
	Users  []User
	Events []Event
}

// SnapshotReader is the single read-only fetch boundary of the engine. The
// window is passed so an implementation may narrow its query; returning the
// full roster and event set is always correct.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, window TimeWindow) (Snapshot, error)
}

type Result struct {
	Window      TimeWindow
	Available   []User
	Unavailable []User
}

type userSet map[UserID]struct{}

func (s userSet) add(id UserID) {
	s[id] = struct{}{}
}

func (s userSet) has(id UserID) bool {
	_, ok := s[id]
	return ok
}

func (s userSet) merge(other userSet) {
	for id := range other {
		s.add(id)
	}
}

// without returns a new slice of users not in s.
func (s userSet) without(users []User) []User {
	kept := make([]User, 0, len(users))
	for _, u := range users {
		if !s.has(u.ID) {
			kept = append(kept, u)
		}
	}
	return kept
}
