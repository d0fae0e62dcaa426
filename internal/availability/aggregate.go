package availability

// aggregate partitions the roster in its original order. A user listed
// twice in the roster is reported once.
func aggregate(window TimeWindow, roster []User, excluded userSet) Result {
	res := Result{
		Window:      window,
		Available:   make([]User, 0, len(roster)),
		Unavailable: make([]User, 0, len(excluded)),
	}

	seen := make(userSet, len(roster))
	for _, u := range roster {
		if seen.has(u.ID) {
			continue
		}
		seen.add(u.ID)

		if excluded.has(u.ID) {
			res.Unavailable = append(res.Unavailable, u)
		} else {
			res.Available = append(res.Available, u)
		}
	}

	return res
}
