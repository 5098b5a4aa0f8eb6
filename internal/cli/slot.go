package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agenda/internal/event"
)

// SlotResult is the JSON payload of the slot command.
type SlotResult struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NewSlotCommand creates the slot command.
func NewSlotCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot <minutes> [date]",
		Short: "Find the next free slot on a date",
		Long: `Find the earliest free interval of the given length inside the
business-hours window of a date (default today).

When searching today, the scan starts at the current time rounded up
to the next quarter hour, never in the past.

Example:
  agenda slot 30
  agenda slot 90 01-06-2026`,
		Args:          rangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dateArg := ""
			if len(args) == 2 {
				dateArg = args[1]
			}
			return runSlot(rootOpts, args[0], dateArg, cmd)
		},
	}

	return cmd
}

func runSlot(opts *RootOptions, minutesArg, dateArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	minutes, err := parseMinutes(minutesArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing duration", err)
	}

	app, err := openApp(opts, formatter)
	if err != nil {
		return err
	}

	date, err := parseDate(dateArg, app.now(), app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing date", err)
	}

	slot, err := app.cal.FindNextSlot(date, minutes)
	if err != nil {
		return fail(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(SlotResult{
			Date:    date.Format(displayISO),
			Minutes: minutes,
			Start:   slot.Start.Format(event.TimeLayout),
			End:     slot.End.Format(event.TimeLayout),
		})
	}

	fmt.Fprintf(formatter.Writer, "Available slot on %s:\n", date.Format(displayDate))
	fmt.Fprintf(formatter.Writer, "Time: %s\n", slot)
	return nil
}
