package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// RemoveResult is the JSON payload of the remove command.
type RemoveResult struct {
	Removed eventPayload `json:"removed"`
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <date> <number>",
		Short: "Remove an event by its list position",
		Long: `Remove one event from a date.

The number is the event's position in "agenda list <date>" output,
counted from 1. Positions are looked up fresh on every call, so run
list first to see the current numbering.

Example:
  agenda remove 01-06-2026 2
  agenda remove today 1`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, dateArg, numberArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	app, err := openApp(opts, formatter)
	if err != nil {
		return err
	}

	date, err := parseDate(dateArg, app.now(), app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing date", err)
	}
	number, err := strconv.Atoi(numberArg)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid event number %q", numberArg))
	}

	// The position maps to an id against this query only.
	events := app.cal.EventsOn(date)
	if len(events) == 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("no events scheduled on %s", date.Format(displayISO)))
	}
	if number < 1 || number > len(events) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid event number %d: choose between 1 and %d", number, len(events)))
	}

	target := events[number-1]
	if err := app.cal.Delete(target.ID()); err != nil {
		return fail(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(RemoveResult{Removed: payloadFrom(target)})
	}

	fmt.Fprintf(formatter.Writer, "Removed %q (%s)\n", target.Title(), interval(target))
	return nil
}
