package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestListEmpty(t *testing.T) {
	env := newCLIEnv(t)

	res := env.run("list", "01-06-2026")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "Events for Tuesday, January 06, 2026:\n\nNo events scheduled for this date.\n", res.stdout)
}

func TestListGolden(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()
	env.mustRun("add", "Dentist", "--on", "01-07-2026", "--from", "10:30 AM", "--to", "11:15 AM")

	// No date argument: list today per the frozen clock.
	res := env.mustRun("list")

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "list", []byte(res.stdout))
}

func TestListOtherDate(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()
	env.mustRun("add", "Dentist", "--on", "01-07-2026", "--from", "10:30 AM", "--to", "11:15 AM")

	res := env.mustRun("list", "01-07-2026")
	assert.Contains(t, res.stdout, "Wednesday, January 07, 2026")
	assert.Contains(t, res.stdout, "1. Dentist")
	assert.NotContains(t, res.stdout, "Team sync")
}

func TestListJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	res := env.run("--format", "json", "list", "01-06-2026")
	assert.Equal(t, ExitSuccess, res.code)
	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"date": "2026-01-06",
			"events": [
				{"id": "id-01", "title": "Team sync", "start": "2026-01-06T09:00:00", "end": "2026-01-06T10:00:00"},
				{"id": "id-02", "title": "Lunch", "start": "2026-01-06T12:00:00", "end": "2026-01-06T13:00:00"}
			]
		}
	}`, res.stdout)
}

func TestListJSONEmptyIsArray(t *testing.T) {
	env := newCLIEnv(t)

	res := env.run("--format", "json", "list", "01-06-2026")
	assert.Equal(t, ExitSuccess, res.code)
	assert.JSONEq(t, `{"status": "ok", "data": {"date": "2026-01-06", "events": []}}`, res.stdout)
}

func TestListAcceptsAlternateDateForms(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	for _, date := range []string{"01-06-2026", "01/06/2026", "2026-01-06", "today"} {
		res := env.mustRun("list", date)
		assert.Contains(t, res.stdout, "1. Team sync", "date form %q", date)
	}
}

func TestListInvalidDate(t *testing.T) {
	env := newCLIEnv(t)

	res := env.run("list", "someday")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.err.Error(), `invalid date "someday"`)
}

func TestListEveningEventStaysOnItsDate(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "Night shift", "--on", "01-06-2026", "--from", "11:00 PM", "--to", "11:59 PM")

	res := env.mustRun("list", "01-07-2026")
	assert.Contains(t, res.stdout, "No events scheduled for this date.")

	res = env.mustRun("list", "01-06-2026")
	assert.Contains(t, res.stdout, "Night shift")
}
