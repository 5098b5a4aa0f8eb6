package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agenda/internal/ics"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// ExportResult is the JSON payload of the export command when writing
// to a file.
type ExportResult struct {
	Exported int    `json:"exported"`
	File     string `json:"file"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the calendar as iCalendar",
		Long: `Export every event as an iCalendar (ICS) stream.

Without --output the raw ICS goes to stdout regardless of --format,
so it can be piped straight into another tool.

Example:
  agenda export > schedule.ics
  agenda export -o schedule.ics`,
		Args:          exactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the ICS to a file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	app, err := openApp(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	events := app.cal.Events()

	var buf bytes.Buffer
	if err := ics.Encode(&buf, events, app.now()); err != nil {
		return WrapExitError(ExitCommandError, "encoding calendar", err)
	}
	formatter.VerboseLog("Encoded %d event(s)", len(events))

	if opts.Output == "" {
		if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
			return WrapExitError(ExitCommandError, "writing calendar", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "writing calendar file", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ExportResult{Exported: len(events), File: opts.Output})
	}

	fmt.Fprintf(formatter.Writer, "Exported %d event(s) to %s\n", len(events), opts.Output)
	return nil
}
