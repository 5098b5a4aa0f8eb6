package cli

import (
	"fmt"
	"io"

	"agenda/internal/event"
)

// Layouts for human-readable text output.
const (
	displayDate  = "Monday, January 02, 2006"
	displayClock = "03:04 PM"
	displayISO   = "2006-01-02"
)

// writeEvents prints a numbered event list, one entry per event with
// its time range, or the empty message when there is nothing to show.
func writeEvents(w io.Writer, events []event.Event, emptyMessage string) {
	if len(events) == 0 {
		fmt.Fprintln(w, emptyMessage)
		return
	}
	for i, ev := range events {
		fmt.Fprintf(w, "%d. %s\n", i+1, ev.Title())
		fmt.Fprintf(w, "   Time: %s\n", interval(ev))
		fmt.Fprintln(w)
	}
}

func interval(ev event.Event) event.Interval {
	return event.Interval{Start: ev.Start(), End: ev.End()}
}
