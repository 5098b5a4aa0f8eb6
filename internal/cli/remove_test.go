package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveText(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	res := env.run("remove", "01-06-2026", "1")
	assert.Equal(t, ExitSuccess, res.code)
	assert.Equal(t, "Removed \"Team sync\" (09:00 AM - 10:00 AM)\n", res.stdout)

	assert.JSONEq(t, `[
		{"title": "Lunch", "start": "2026-01-06T12:00:00", "end": "2026-01-06T13:00:00"}
	]`, env.dataFile())
}

func TestRemovePositionsRenumber(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	// After the first removal Lunch moves up to position 1.
	env.mustRun("remove", "today", "1")
	res := env.mustRun("remove", "today", "1")
	assert.Contains(t, res.stdout, "Removed \"Lunch\"")

	res = env.mustRun("list")
	assert.Contains(t, res.stdout, "No events scheduled for this date.")
}

func TestRemoveJSON(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	res := env.run("--format", "json", "remove", "01-06-2026", "2")
	assert.Equal(t, ExitSuccess, res.code)
	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"removed": {
				"id": "id-02",
				"title": "Lunch",
				"start": "2026-01-06T12:00:00",
				"end": "2026-01-06T13:00:00"
			}
		}
	}`, res.stdout)
}

func TestRemoveOutOfRange(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	for _, number := range []string{"0", "3"} {
		res := env.run("remove", "01-06-2026", number)
		assert.Equal(t, ExitCommandError, res.code)
		assert.Contains(t, res.err.Error(), "choose between 1 and 2")
	}

	// Nothing was removed.
	res := env.mustRun("list", "01-06-2026")
	assert.Contains(t, res.stdout, "Team sync")
	assert.Contains(t, res.stdout, "Lunch")
}

func TestRemoveEmptyDay(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	res := env.run("remove", "01-07-2026", "1")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.err.Error(), "no events scheduled on 2026-01-07")
}

func TestRemoveBadNumber(t *testing.T) {
	env := newCLIEnv(t)
	env.seed()

	res := env.run("remove", "today", "first")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.err.Error(), `invalid event number "first"`)
}

func TestRemoveInvalidDate(t *testing.T) {
	env := newCLIEnv(t)

	res := env.run("remove", "someday", "1")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.err.Error(), `invalid date "someday"`)
}
