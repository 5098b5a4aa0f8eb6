// Package ics moves events in and out of iCalendar streams so schedules
// can be exchanged with ordinary calendar tools.
package ics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"agenda/internal/event"
)

// prodID identifies this program in exported calendars.
const prodID = "-//agenda//EN"

// Entry is one imported event candidate: the UID is carried for
// reporting, the rest feeds calendar.Add.
type Entry struct {
	UID   string
	Title string
	Start time.Time
	End   time.Time
}

// Encode writes events as a single VCALENDAR.
//
// Each event becomes a VEVENT with its id as UID and its title as
// SUMMARY. Instants are written in UTC. DTSTAMP is taken from now, not
// the wall clock, so identical input produces identical bytes.
func Encode(w io.Writer, events []event.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	for _, ev := range events {
		vevent := ical.NewComponent(ical.CompEvent)
		vevent.Props.SetText(ical.PropUID, ev.ID())
		vevent.Props.SetText(ical.PropSummary, ev.Title())
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeStart, ev.Start().UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, ev.End().UTC())
		cal.Children = append(cal.Children, vevent)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

// Decode parses every VEVENT in the stream into an Entry, with instants
// expressed in loc (nil means the system local zone).
//
// Nothing is skipped silently: a VEVENT missing SUMMARY, DTSTART or
// DTEND fails the whole decode with an error naming the component, as
// does one carrying an RRULE (recurring events are not supported).
// Non-event components such as VTIMEZONE are ignored.
func Decode(r io.Reader, loc *time.Location) ([]Entry, error) {
	if loc == nil {
		loc = time.Local
	}

	entries := []Entry{}
	dec := ical.NewDecoder(r)
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			entry, err := decodeEvent(comp, len(entries), loc)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func decodeEvent(comp *ical.Component, position int, loc *time.Location) (Entry, error) {
	entry := Entry{}
	if uid := comp.Props.Get(ical.PropUID); uid != nil {
		entry.UID = uid.Value
	}
	label := fmt.Sprintf("event %d", position+1)
	if entry.UID != "" {
		label = fmt.Sprintf("event %d (UID %s)", position+1, entry.UID)
	}

	if comp.Props.Get(ical.PropRecurrenceRule) != nil {
		return Entry{}, fmt.Errorf("%s: recurring events are not supported", label)
	}

	summary := comp.Props.Get(ical.PropSummary)
	if summary == nil {
		return Entry{}, fmt.Errorf("%s: missing SUMMARY", label)
	}
	entry.Title = summary.Value

	start, err := datetime(comp, ical.PropDateTimeStart, loc)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", label, err)
	}
	end, err := datetime(comp, ical.PropDateTimeEnd, loc)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", label, err)
	}
	entry.Start = start.In(loc)
	entry.End = end.In(loc)

	return entry, nil
}

func datetime(comp *ical.Component, name string, loc *time.Location) (time.Time, error) {
	prop := comp.Props.Get(name)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing %s", name)
	}
	t, err := prop.DateTime(loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", name, prop.Value, err)
	}
	return t, nil
}
