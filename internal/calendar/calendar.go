package calendar

import (
	"fmt"
	"sort"
	"time"

	"agenda/internal/event"
)

// Storage is the durable representation the Calendar loads from and
// saves to. Save must replace the previous contents atomically; Load
// must report an absent file as an empty record set, not an error.
type Storage interface {
	Load() ([]event.Record, error)
	Save([]event.Record) error
}

// BusinessHours is the daily window slot search operates in, expressed
// as offsets from local midnight.
type BusinessHours struct {
	Start time.Duration
	End   time.Duration
}

// DefaultBusinessHours is the 08:00-18:00 window.
var DefaultBusinessHours = BusinessHours{Start: 8 * time.Hour, End: 18 * time.Hour}

// Calendar owns the full collection of events. See the package
// documentation for the ownership and consistency model.
type Calendar struct {
	storage Storage
	events  []event.Event // sorted by (start, end, title)

	now   func() time.Time
	zone  *time.Location
	ids   IDSource
	hours BusinessHours
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithNow injects the clock used for "today" decisions in slot search.
func WithNow(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

// WithZone sets the reference zone for all calendar-date arithmetic.
func WithZone(loc *time.Location) Option {
	return func(c *Calendar) { c.zone = loc }
}

// WithIDSource sets the identifier source for created events.
func WithIDSource(src IDSource) Option {
	return func(c *Calendar) { c.ids = src }
}

// WithBusinessHours sets the slot-search window as offsets from midnight.
func WithBusinessHours(start, end time.Duration) Option {
	return func(c *Calendar) { c.hours = BusinessHours{Start: start, End: end} }
}

// New creates an empty Calendar backed by storage.
//
// Defaults: time.Now clock, the system local zone, UUIDv7 ids, and the
// 08:00-18:00 business window. Call Load to populate from storage.
func New(storage Storage, opts ...Option) *Calendar {
	c := &Calendar{
		storage: storage,
		events:  []event.Event{},
		now:     time.Now,
		zone:    time.Local,
		ids:     UUIDSource{},
		hours:   DefaultBusinessHours,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add validates and inserts a new event.
//
// Construction failures propagate as INVALID_EVENT. The candidate is
// then tested against every stored event; on the first overlap (the
// collection is sorted, so chronologically first) Add fails with
// CONFLICT carrying that event and mutates nothing. Otherwise the event
// is inserted and the collection persisted before returning.
func (c *Calendar) Add(title string, start, end time.Time) (event.Event, error) {
	// Times are normalized into the reference zone so the persisted
	// wall-clock form reads back as the same instant.
	ev, err := event.New(c.ids.NewID(), title, start.In(c.zone), end.In(c.zone))
	if err != nil {
		return event.Event{}, err
	}

	for _, existing := range c.events {
		if ev.Overlaps(existing) {
			return event.Event{}, NewConflictError(existing)
		}
	}

	c.events = append(c.events, ev)
	c.sortEvents()

	if err := c.persist(); err != nil {
		c.removeByID(ev.ID())
		return event.Event{}, err
	}
	return ev, nil
}

// Delete removes the event with the given id and persists.
//
// Fails with NOT_FOUND when no stored event has that id, mutating
// nothing.
func (c *Calendar) Delete(id string) error {
	removed, ok := c.removeByID(id)
	if !ok {
		return NewNotFoundError(id)
	}

	if err := c.persist(); err != nil {
		c.events = append(c.events, removed)
		c.sortEvents()
		return err
	}
	return nil
}

// EventsOn returns the events whose [start, end) interval intersects the
// 24-hour span of date in the reference zone, ordered ascending by
// start, ties by end, then title. The result is an empty slice, never
// nil, and is a copy the caller may keep.
func (c *Calendar) EventsOn(date time.Time) []event.Event {
	dayStart := c.dayStart(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := []event.Event{}
	for _, ev := range c.events {
		if ev.Start().Before(dayEnd) && ev.End().After(dayStart) {
			out = append(out, ev)
		}
	}
	return out
}

// RemainingToday returns the events on now's calendar date that have not
// finished: end > now. An in-progress event (start <= now < end) is
// included; one ending exactly at now is not. Ordered ascending by
// start.
func (c *Calendar) RemainingToday(now time.Time) []event.Event {
	out := []event.Event{}
	for _, ev := range c.EventsOn(now) {
		if ev.End().After(now) {
			out = append(out, ev)
		}
	}
	return out
}

// Events returns a sorted copy of the full collection.
func (c *Calendar) Events() []event.Event {
	out := make([]event.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Len returns the number of stored events.
func (c *Calendar) Len() int { return len(c.events) }

// Load replaces the collection with the persisted one.
//
// An absent file yields an empty calendar. A file that exists but cannot
// be decoded, a record violating the event invariants, or a pair of
// overlapping records fails with CORRUPT_STORE and leaves the collection
// empty rather than silently discarding the damaged data. Loaded events
// receive fresh ids.
func (c *Calendar) Load() error {
	recs, err := c.storage.Load()
	if err != nil {
		return NewCorruptStoreError("reading persisted calendar", err)
	}

	events := make([]event.Event, 0, len(recs))
	for i, rec := range recs {
		ev, err := event.FromRecord(rec, c.ids.NewID(), c.zone)
		if err != nil {
			return NewCorruptStoreError(fmt.Sprintf("record %d", i), err)
		}
		events = append(events, ev)
	}

	sort.Slice(events, func(i, j int) bool { return eventLess(events[i], events[j]) })

	// With starts sorted, any overlap in the set implies an overlap
	// between some adjacent pair, so one pass restores the invariant
	// check.
	for i := 1; i < len(events); i++ {
		if events[i-1].Overlaps(events[i]) {
			return NewCorruptStoreError(fmt.Sprintf(
				"events %q and %q overlap", events[i-1].Title(), events[i].Title(),
			), nil)
		}
	}

	c.events = events
	return nil
}

// Save persists the full collection, sorted by start so the file bytes
// are deterministic for identical contents.
func (c *Calendar) Save() error { return c.persist() }

func (c *Calendar) persist() error {
	recs := make([]event.Record, len(c.events))
	for i, ev := range c.events {
		recs[i] = ev.Record()
	}
	if err := c.storage.Save(recs); err != nil {
		return fmt.Errorf("persisting calendar: %w", err)
	}
	return nil
}

// removeByID removes and returns the event with the given id.
func (c *Calendar) removeByID(id string) (event.Event, bool) {
	for i, ev := range c.events {
		if ev.ID() == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return ev, true
		}
	}
	return event.Event{}, false
}

// dayStart returns midnight of date's calendar day in the reference zone.
func (c *Calendar) dayStart(date time.Time) time.Time {
	d := date.In(c.zone)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, c.zone)
}

func (c *Calendar) sortEvents() {
	sort.Slice(c.events, func(i, j int) bool {
		return eventLess(c.events[i], c.events[j])
	})
}

// eventLess orders by start, then end, then title. Total for events with
// distinct (start, end, title); the tie-break keeps query output and the
// conflict scan deterministic.
func eventLess(a, b event.Event) bool {
	if !a.Start().Equal(b.Start()) {
		return a.Start().Before(b.Start())
	}
	if !a.End().Equal(b.End()) {
		return a.End().Before(b.End())
	}
	return a.Title() < b.Title()
}
