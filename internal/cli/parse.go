package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date formats accepted on the command line, tried in order.
// MM-DD-YYYY is the documented form; the other two are tolerated.
var dateLayouts = []string{"01-02-2006", "01/02/2006", "2006-01-02"}

// Clock formats accepted on the command line, tried in order.
var timeLayouts = []string{"3:04 PM", "3:04PM", "15:04", "3 PM", "3PM"}

// parseDate resolves a date argument to midnight in the given zone.
// Empty input and the word "today" mean the current date.
func parseDate(input string, now time.Time, zone *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		d := now.In(zone)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, zone), nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, input, zone); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use MM-DD-YYYY, MM/DD/YYYY or YYYY-MM-DD", input)
}

// parseClockTime reads a wall-clock time like "2:30 PM" or "14:30" and
// places it on date's calendar day in the given zone.
func parseClockTime(input string, date time.Time, zone *time.Location) (time.Time, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(input))
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		d := date.In(zone)
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, zone), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: examples: 2:30 PM, 14:30, 9 AM", input)
}

// parseMinutes reads a whole number of minutes. Range checking is left
// to the slot search so a zero or negative request surfaces as
// INVALID_DURATION.
func parseMinutes(input string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: enter whole minutes, like 30", input)
	}
	return minutes, nil
}
