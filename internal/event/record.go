package event

import (
	"fmt"
	"time"
)

// TimeLayout is the fixed timestamp encoding used by the persisted file
// format. It is sortable as text and carries no zone suffix; records are
// interpreted in the store's reference zone.
const TimeLayout = "2006-01-02T15:04:05"

// Record is the wire representation of one event in the persisted file:
// a flat JSON object with no id and no envelope.
type Record struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Record returns the wire representation of the event.
func (e Event) Record() Record {
	return Record{
		Title: e.title,
		Start: e.start.Format(TimeLayout),
		End:   e.end.Format(TimeLayout),
	}
}

// FromRecord is the exact inverse of Event.Record.
//
// Timestamps are parsed with TimeLayout in loc (time.Local when loc is
// nil). Fails with a MALFORMED_RECORD error when a field is missing or
// unparsable, or when the decoded fields violate the Event invariants.
// The given id is assigned to the decoded event.
func FromRecord(rec Record, id string, loc *time.Location) (Event, error) {
	if loc == nil {
		loc = time.Local
	}

	start, err := time.ParseInLocation(TimeLayout, rec.Start, loc)
	if err != nil {
		return Event{}, NewMalformedRecordError(fmt.Sprintf("bad start timestamp %q", rec.Start), err)
	}
	end, err := time.ParseInLocation(TimeLayout, rec.End, loc)
	if err != nil {
		return Event{}, NewMalformedRecordError(fmt.Sprintf("bad end timestamp %q", rec.End), err)
	}

	ev, err := New(id, rec.Title, start, end)
	if err != nil {
		return Event{}, NewMalformedRecordError("record violates event invariants", err)
	}
	return ev, nil
}
