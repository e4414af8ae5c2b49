package promotion

import "time"

// ExtendWindow computes the new expiry for a visibility window.
//
// The extension stacks: if the current expiry is still in the future the new
// window starts there, otherwise it starts now. An unset or stale expiry never
// shortens the result, and repeated purchases only ever grow it.
// AddDate is calendar-day addition, so windows stay aligned across DST shifts.
func ExtendWindow(now time.Time, current *time.Time, days int) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.AddDate(0, 0, days)
}

// WindowActive reports whether a window expiry grants visibility at the given
// instant. Visibility is always derived from the timestamp, never stored as a
// flag.
func WindowActive(until *time.Time, now time.Time) bool {
	return until != nil && until.After(now)
}
