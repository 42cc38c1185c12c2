package analytics

import "time"

// Window is an inclusive date range. A nil bound means unbounded on that
// side. Bounds are widened to whole days: From snaps to 00:00:00 and To to
// the last nanosecond of its day, so a record dated exactly on either bound
// is included.
type Window struct {
	from *time.Time
	to   *time.Time
}

// NewWindow builds a window from optional bounds, widening each to cover
// its full day.
func NewWindow(from, to *time.Time) Window {
	var w Window
	if from != nil {
		f := startOfDay(*from)
		w.from = &f
	}
	if to != nil {
		t := endOfDay(*to)
		w.to = &t
	}
	return w
}

// CurrentMonth returns a window spanning the calendar month containing now.
func CurrentMonth(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return NewWindow(&first, &last)
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	if w.from != nil && t.Before(*w.from) {
		return false
	}
	if w.to != nil && t.After(*w.to) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
