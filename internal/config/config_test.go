package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "calendar_data.json", cfg.DataFile)
	assert.Equal(t, "", cfg.Timezone)
	assert.Equal(t, Hours{Start: "08:00", End: "18:00"}, cfg.BusinessHours)
}

func TestLoad_BootstrapsAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// First run leaves a private config file behind.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_FullConfig(t *testing.T) {
	path := write(t, `data_file: /var/lib/agenda/events.json
timezone: America/New_York
business_hours:
  start: "09:30"
  end: "17:00"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/agenda/events.json", cfg.DataFile)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, Hours{Start: "09:30", End: "17:00"}, cfg.BusinessHours)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	path := write(t, "")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileNormalized(t *testing.T) {
	path := write(t, "timezone: UTC\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "calendar_data.json", cfg.DataFile)
	assert.Equal(t, Hours{Start: "08:00", End: "18:00"}, cfg.BusinessHours)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := write(t, "datafile: events.json\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "datafile")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := write(t, "data_file: [unclosed\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "garbage start hour",
			content: "business_hours:\n  start: \"nineish\"\n",
			wantIn:  "nineish",
		},
		{
			name:    "out of range hour",
			content: "business_hours:\n  start: \"25:00\"\n",
			wantIn:  "25:00",
		},
		{
			name:    "end before start",
			content: "business_hours:\n  start: \"18:00\"\n  end: \"08:00\"\n",
			wantIn:  "not before",
		},
		{
			name:    "zero length window",
			content: "business_hours:\n  start: \"09:00\"\n  end: \"09:00\"\n",
			wantIn:  "not before",
		},
		{
			name:    "unknown timezone",
			content: "timezone: Mars/Olympus\n",
			wantIn:  "Mars/Olympus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestHours_Window(t *testing.T) {
	start, end, err := Hours{Start: "08:00", End: "17:30"}.Window()

	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, start)
	assert.Equal(t, 17*time.Hour+30*time.Minute, end)
}

func TestLocation_EmptyMeansLocal(t *testing.T) {
	loc, err := (&Config{}).Location()

	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLocation_IANAName(t *testing.T) {
	loc, err := (&Config{Timezone: "America/New_York"}).Location()

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestResolveDataFile(t *testing.T) {
	cfg := &Config{DataFile: "calendar_data.json"}
	assert.Equal(t,
		filepath.Join("/home/u/.config/agenda", "calendar_data.json"),
		cfg.ResolveDataFile("/home/u/.config/agenda/config.yaml"))

	cfg = &Config{DataFile: "/var/lib/agenda/events.json"}
	assert.Equal(t, "/var/lib/agenda/events.json",
		cfg.ResolveDataFile("/home/u/.config/agenda/config.yaml"))
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Config{
		DataFile:      "events.json",
		Timezone:      "Europe/Berlin",
		BusinessHours: Hours{Start: "07:00", End: "19:00"},
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, Save(path, Default()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("agenda", "config.yaml")), path)
}
