package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agenda/internal/event"
)

// TodayResult is the JSON payload of the today command.
type TodayResult struct {
	Date   string         `json:"date"`
	Now    string         `json:"now"`
	Events []eventPayload `json:"events"`
}

// NewTodayCommand creates the today command.
func NewTodayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show what is left of today",
		Long: `Show today's events that have not finished yet.

An event in progress right now is included; one that ended at or
before the current minute is not.`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(rootOpts, cmd)
		},
	}

	return cmd
}

func runToday(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	app, err := openApp(opts, formatter)
	if err != nil {
		return err
	}

	now := app.now().In(app.zone)
	events := app.cal.RemainingToday(now)

	if formatter.Format == "json" {
		return formatter.Success(TodayResult{
			Date:   now.Format(displayISO),
			Now:    now.Format(event.TimeLayout),
			Events: payloadsFrom(events),
		})
	}

	fmt.Fprintf(formatter.Writer, "Date: %s\n", now.Format(displayDate))
	fmt.Fprintf(formatter.Writer, "Current time: %s\n\n", now.Format(displayClock))
	writeEvents(formatter.Writer, events, "No remaining events for today.")
	return nil
}
