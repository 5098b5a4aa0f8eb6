// Package config loads and persists the application configuration: the
// data file location, the reference timezone, and the business-hours
// window used by slot search.
//
// The file is YAML. Unknown keys are rejected so typos fail loudly
// instead of silently falling back to defaults. An absent file is
// bootstrapped with defaults on first load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const clockLayout = "15:04"

// Hours is a daily window in "HH:MM" config syntax.
type Hours struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Window parses the window into offsets from local midnight.
func (h Hours) Window() (start, end time.Duration, err error) {
	start, err = parseClock(h.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("business_hours start: %w", err)
	}
	end, err = parseClock(h.End)
	if err != nil {
		return 0, 0, fmt.Errorf("business_hours end: %w", err)
	}
	return start, end, nil
}

// Config is the top-level application configuration.
type Config struct {
	// DataFile is the event store path. Relative paths resolve against
	// the config file's directory.
	DataFile string `yaml:"data_file"`

	// Timezone is the IANA zone for all calendar-date arithmetic
	// (e.g. "America/New_York"). Empty means the system local zone.
	Timezone string `yaml:"timezone"`

	// BusinessHours is the window slot search operates in.
	BusinessHours Hours `yaml:"business_hours"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile: "calendar_data.json",
		Timezone: "",
		BusinessHours: Hours{
			Start: "08:00",
			End:   "18:00",
		},
	}
}

// Normalize fills blank fields with defaults so partially written
// configs still behave.
func (c *Config) Normalize() {
	def := Default()
	if c.DataFile == "" {
		c.DataFile = def.DataFile
	}
	if c.BusinessHours.Start == "" {
		c.BusinessHours.Start = def.BusinessHours.Start
	}
	if c.BusinessHours.End == "" {
		c.BusinessHours.End = def.BusinessHours.End
	}
}

// Validate checks that the business hours parse and are ordered and
// that the timezone resolves.
func (c *Config) Validate() error {
	start, end, err := c.BusinessHours.Window()
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("business_hours: start %q is not before end %q",
			c.BusinessHours.Start, c.BusinessHours.End)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone, defaulting to the system
// local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("resolving timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ResolveDataFile returns the data file path with relative values taken
// against the config file's directory.
func (c *Config) ResolveDataFile(configPath string) string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(filepath.Dir(configPath), c.DataFile)
}

// DefaultPath returns the per-user config location, typically
// ~/.config/agenda/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "agenda", "config.yaml"), nil
}

// Load reads the config at path.
//
// An absent file is created with defaults (first run) and the defaults
// returned. A present file is decoded strictly: unknown keys and
// malformed values are errors, as are windows that fail Validate. An
// empty file means all defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return nil, fmt.Errorf("writing default config: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path atomically with 0600 permissions, creating
// the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".agenda-config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func parseClock(value string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q (want HH:MM)", value)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
