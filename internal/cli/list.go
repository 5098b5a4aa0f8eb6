package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Date   string         `json:"date"`
	Events []eventPayload `json:"events"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [date]",
		Short: "List events on a date",
		Long: `List the events on a date (default today), ordered by start time.

An event that crosses midnight shows up on every date it touches.

Example:
  agenda list
  agenda list 01-06-2026`,
		Args:          rangeArgs(0, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dateArg := ""
			if len(args) == 1 {
				dateArg = args[0]
			}
			return runList(rootOpts, dateArg, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, dateArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	app, err := openApp(opts, formatter)
	if err != nil {
		return err
	}

	date, err := parseDate(dateArg, app.now(), app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing date", err)
	}

	events := app.cal.EventsOn(date)
	formatter.VerboseLog("Found %d event(s) on %s", len(events), date.Format(displayISO))

	if formatter.Format == "json" {
		return formatter.Success(ListResult{
			Date:   date.Format(displayISO),
			Events: payloadsFrom(events),
		})
	}

	fmt.Fprintf(formatter.Writer, "Events for %s:\n\n", date.Format(displayDate))
	writeEvents(formatter.Writer, events, "No events scheduled for this date.")
	return nil
}
