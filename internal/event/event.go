package event

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// clockLayout is the human-facing time-of-day format used by String.
const clockLayout = "03:04 PM"

// Event is one scheduled interval with a title.
//
// Events are created through New and never mutated. The id is an opaque
// token assigned by the owning store; it is not part of the persisted
// representation and two events are Equal regardless of their ids.
type Event struct {
	id    string
	title string
	start time.Time
	end   time.Time
}

// New validates and constructs an Event.
//
// Fails with an INVALID_EVENT error when the title is blank (empty or
// whitespace only) or when start is not strictly before end. Both
// timestamps are truncated to second precision before the comparison, so
// an interval shorter than one second is rejected as zero-length.
//
// Past dates are allowed; this layer does no scheduling policy.
func New(id, title string, start, end time.Time) (Event, error) {
	if strings.TrimSpace(title) == "" {
		return Event{}, NewInvalidEventError("title must not be blank")
	}

	start = start.Truncate(time.Second)
	end = end.Truncate(time.Second)
	if !start.Before(end) {
		return Event{}, NewInvalidEventError(fmt.Sprintf(
			"start %s must be before end %s",
			start.Format(TimeLayout), end.Format(TimeLayout),
		))
	}

	return Event{
		id:    id,
		title: norm.NFC.String(title),
		start: start,
		end:   end,
	}, nil
}

// ID returns the opaque identifier assigned at creation.
func (e Event) ID() string { return e.id }

// Title returns the NFC-normalized title.
func (e Event) Title() string { return e.title }

// Start returns the inclusive start instant.
func (e Event) Start() time.Time { return e.start }

// End returns the exclusive end instant.
func (e Event) End() time.Time { return e.end }

// Duration returns end minus start. Always positive for a valid Event.
func (e Event) Duration() time.Duration { return e.end.Sub(e.start) }

// Overlaps reports whether two events share at least one instant.
//
// Half-open semantics: an event ending exactly when another starts does
// NOT overlap it. The predicate is symmetric and classifies containment
// and identical intervals as overlap.
func (e Event) Overlaps(other Event) bool {
	return e.start.Before(other.end) && e.end.After(other.start)
}

// Equal reports whether two events describe the same scheduled interval:
// same title and the same instants. IDs are ignored, matching the
// persisted identity (the file format carries no id field).
func (e Event) Equal(other Event) bool {
	return e.title == other.title &&
		e.start.Equal(other.start) &&
		e.end.Equal(other.end)
}

// String renders the event for human display, e.g.
//
//	Team sync: 2026-01-06 from 09:00 AM to 10:00 AM
func (e Event) String() string {
	return fmt.Sprintf("%s: %s from %s to %s",
		e.title,
		e.start.Format("2006-01-02"),
		e.start.Format(clockLayout),
		e.end.Format(clockLayout),
	)
}

// Interval is a free half-open time span [Start, End), as returned by
// slot search.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End minus Start.
func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

// String renders the interval as a clock range, e.g. "10:00 AM - 11:30 AM".
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format(clockLayout), iv.End.Format(clockLayout))
}
