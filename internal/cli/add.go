package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	On   string
	From string
	To   string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Schedule a new event",
		Long: `Schedule a new event.

The event is rejected when it overlaps an existing one. Touching
events, where one ends exactly when the next starts, are allowed.

Example:
  agenda add "Team sync" --on 01-06-2026 --from "9:00 AM" --to "10:00 AM"
  agenda add Lunch --from 12:00 --to 13:00`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.On, "on", "", "event date (default today)")
	cmd.Flags().StringVar(&opts.From, "from", "", "start time (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "end time (required)")

	return cmd
}

func runAdd(opts *AddOptions, title string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.From == "" {
		return NewExitError(ExitCommandError, "--from is required")
	}
	if opts.To == "" {
		return NewExitError(ExitCommandError, "--to is required")
	}

	app, err := openApp(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	date, err := parseDate(opts.On, app.now(), app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing --on", err)
	}
	start, err := parseClockTime(opts.From, date, app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing --from", err)
	}
	end, err := parseClockTime(opts.To, date, app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing --to", err)
	}

	ev, err := app.cal.Add(title, start, end)
	if err != nil {
		return fail(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(payloadFrom(ev))
	}

	fmt.Fprintf(formatter.Writer, "Added %q on %s\n", ev.Title(), ev.Start().Format(displayDate))
	fmt.Fprintf(formatter.Writer, "Time: %s\n", interval(ev))
	return nil
}
