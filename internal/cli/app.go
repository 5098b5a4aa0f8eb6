package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"agenda/internal/calendar"
	"agenda/internal/config"
	"agenda/internal/event"
	"agenda/internal/store"
)

// app bundles what every command needs once configuration is resolved:
// the loaded calendar, the reference zone, and the clock.
type app struct {
	cfg      *config.Config
	cal      *calendar.Calendar
	zone     *time.Location
	now      func() time.Time
	dataPath string
}

// openApp resolves configuration, builds the calendar, and loads the
// persisted events.
//
// Configuration problems are command errors. A store file that exists
// but cannot be decoded is a domain failure reported on the formatter;
// the damaged file is left untouched.
func openApp(opts *RootOptions, formatter *OutputFormatter) (*app, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.DefaultPath()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolving config path", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	zone, err := cfg.Location()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	winStart, winEnd, err := cfg.BusinessHours.Window()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}

	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = cfg.ResolveDataFile(configPath)
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	ids := opts.IDs
	if ids == nil {
		ids = calendar.UUIDSource{}
	}

	cal := calendar.New(store.NewFileStore(dataPath),
		calendar.WithZone(zone),
		calendar.WithNow(now),
		calendar.WithIDSource(ids),
		calendar.WithBusinessHours(winStart, winEnd),
	)
	if err := cal.Load(); err != nil {
		return nil, fail(formatter, err)
	}
	slog.Debug("calendar loaded", "events", cal.Len(), "data", dataPath, "zone", zone.String())

	return &app{cfg: cfg, cal: cal, zone: zone, now: now, dataPath: dataPath}, nil
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// fail reports a domain failure on the formatter and returns the
// matching ExitError. Errors outside the domain taxonomy are treated as
// command errors.
func fail(formatter *OutputFormatter, err error) error {
	code, message, ok := domainError(err)
	if !ok {
		return WrapExitError(ExitCommandError, "unexpected failure", err)
	}
	_ = formatter.Error(code, message, failureDetails(err))
	return WrapExitError(ExitFailure, message, err)
}

// domainError extracts the code and message of a structured calendar or
// event error.
func domainError(err error) (code, message string, ok bool) {
	var ce *calendar.Error
	if errors.As(err, &ce) {
		return string(ce.Code), ce.Message, true
	}
	var ee *event.Error
	if errors.As(err, &ee) {
		return string(ee.Code), ee.Message, true
	}
	return "", "", false
}

// failureDetails carries machine-readable context for JSON consumers:
// the conflicting event for CONFLICT, the missing id for NOT_FOUND.
func failureDetails(err error) interface{} {
	var ce *calendar.Error
	if !errors.As(err, &ce) {
		return nil
	}
	switch {
	case ce.Conflict != nil:
		return payloadFrom(*ce.Conflict)
	case ce.ID != "":
		return map[string]string{"id": ce.ID}
	default:
		return nil
	}
}

// eventPayload is the JSON shape of one event in command output. Start
// and end use the store's timestamp layout.
type eventPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func payloadFrom(ev event.Event) eventPayload {
	rec := ev.Record()
	return eventPayload{ID: ev.ID(), Title: rec.Title, Start: rec.Start, End: rec.End}
}

func payloadsFrom(events []event.Event) []eventPayload {
	out := make([]eventPayload, len(events))
	for i, ev := range events {
		out[i] = payloadFrom(ev)
	}
	return out
}

// exactArgs is cobra.ExactArgs with a command-error exit code, so
// misuse exits 2 rather than 1.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("%q accepts %d arg(s), received %d", cmd.Name(), n, len(args)))
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs with a command-error exit code.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("%q accepts between %d and %d arg(s), received %d", cmd.Name(), min, max, len(args)))
		}
		return nil
	}
}
