package goals

import "time"

// CanTap reports whether a goal last tapped at last may be tapped at now.
// Days are compared on the calendar in now's location, so 23:59 and 00:01
// the next morning count as different days.
func CanTap(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	return !SameDay(*last, now)
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
