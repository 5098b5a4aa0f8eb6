package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agenda/internal/calendar"
	"agenda/internal/event"
	"agenda/internal/ics"
)

// SkippedEntry describes one ICS event that could not be imported.
type SkippedEntry struct {
	Title  string `json:"title"`
	UID    string `json:"uid,omitempty"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// ImportResult is the JSON payload of the import command.
type ImportResult struct {
	Imported []eventPayload `json:"imported"`
	Skipped  []SkippedEntry `json:"skipped"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from an iCalendar file",
		Long: `Import every event from an iCalendar (ICS) file.

Each event is added like "agenda add": one that overlaps the existing
schedule, or an earlier entry of the same file, is skipped and
reported without stopping the rest. Files with recurring events are
rejected.

Example:
  agenda import schedule.ics`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	app, err := openApp(opts, formatter)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening calendar file", err)
	}
	defer f.Close()

	entries, err := ics.Decode(f, app.zone)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("reading %s", path), err)
	}
	formatter.VerboseLog("Decoded %d event(s) from %s", len(entries), path)

	imported := []event.Event{}
	skipped := []SkippedEntry{}
	for _, entry := range entries {
		ev, err := app.cal.Add(entry.Title, entry.Start, entry.End)
		if err != nil {
			if calendar.IsConflictError(err) || event.IsInvalidEventError(err) {
				code, reason, _ := domainError(err)
				skipped = append(skipped, SkippedEntry{
					Title:  entry.Title,
					UID:    entry.UID,
					Code:   code,
					Reason: reason,
				})
				continue
			}
			// Anything else means the store itself failed; stop here.
			return fail(formatter, err)
		}
		imported = append(imported, ev)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(ImportResult{
			Imported: payloadsFrom(imported),
			Skipped:  skipped,
		}); err != nil {
			return err
		}
	} else {
		for _, ev := range imported {
			fmt.Fprintf(formatter.Writer, "Imported %q (%s)\n", ev.Title(), interval(ev))
		}
		for _, s := range skipped {
			fmt.Fprintf(formatter.Writer, "Skipped %q: %s\n", s.Title, s.Reason)
		}
		fmt.Fprintf(formatter.Writer, "\nImported %d event(s), skipped %d.\n", len(imported), len(skipped))
	}

	if len(skipped) > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d events not imported", len(skipped), len(entries)))
	}
	return nil
}
