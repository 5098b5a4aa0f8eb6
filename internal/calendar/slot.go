package calendar

import (
	"time"

	"agenda/internal/event"
)

// FindNextSlot searches date's business-hours window for the earliest
// free interval of the requested length.
//
// The scan keeps a cursor starting at the window start and walks the
// day's events in chronological order: a gap of at least the requested
// duration before the next event is returned immediately (earliest-fit,
// not largest-fit); otherwise the cursor advances past the event. The
// tail of the window is checked last.
//
// When date is the current day per the injected clock and the clock is
// past the window start, the cursor instead starts at the clock time
// rounded up to the next quarter hour, so the search never proposes a
// slot in the past.
//
// Fails with INVALID_DURATION for a non-positive request and with
// NO_SLOT_AVAILABLE when nothing of the requested length fits.
func (c *Calendar) FindNextSlot(date time.Time, durationMinutes int) (event.Interval, error) {
	if durationMinutes <= 0 {
		return event.Interval{}, NewInvalidDurationError(durationMinutes)
	}
	need := time.Duration(durationMinutes) * time.Minute

	dayStart := c.dayStart(date)
	winStart := dayStart.Add(c.hours.Start)
	winEnd := dayStart.Add(c.hours.End)

	cursor := winStart
	now := c.now().In(c.zone)
	if c.dayStart(now).Equal(dayStart) && now.After(winStart) {
		cursor = nextQuarterHour(now)
	}

	for _, ev := range c.EventsOn(date) {
		if !ev.End().After(cursor) {
			continue
		}
		// Events at or beyond the window end cannot bound a usable gap.
		if !ev.Start().Before(winEnd) {
			break
		}
		if ev.Start().Sub(cursor) >= need {
			return event.Interval{Start: cursor, End: cursor.Add(need)}, nil
		}
		if ev.End().After(cursor) {
			cursor = ev.End()
		}
	}

	if winEnd.Sub(cursor) >= need {
		return event.Interval{Start: cursor, End: cursor.Add(need)}, nil
	}
	return event.Interval{}, NewNoSlotError(date, durationMinutes)
}

// nextQuarterHour returns t advanced to the next :00/:15/:30/:45
// boundary, seconds dropped. A time exactly on a boundary still advances
// to the following one.
func nextQuarterHour(t time.Time) time.Time {
	rounded := ((t.Minute() / 15) + 1) * 15
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return base.Add(time.Duration(rounded) * time.Minute)
}
