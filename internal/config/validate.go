package config

import (
	"log/slog"
	"time"
)

// Validate performs validation checks on the settings document.
func (s Settings) Validate() error {
	if _, ok := LookupProfile(s.Profile); !ok {
		return errUnknownProfile.Fmt(s.Profile, ProfileNames())
	}

	if s.SoundVolume < 0 || s.SoundVolume > 1 {
		return errInvalidVolume.Fmt(s.SoundVolume)
	}

	if s.DailyGoal < minDailyGoal || s.DailyGoal > maxDailyGoal {
		return errInvalidDailyGoal.Fmt(minDailyGoal, maxDailyGoal, s.DailyGoal)
	}

	return s.CustomTimes.Validate()
}

// Validate checks that every duration is within the supported range.
func (d Durations) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"work", d.WorkTime},
		{"micro break", d.MicroBreak},
		{"exercise break", d.ExerciseBreak},
		{"long break", d.LongBreak},
	}

	for _, f := range fields {
		dur := time.Duration(f.value) * time.Second
		if dur < minPhaseDuration || dur > maxPhaseDuration {
			return errInvalidDuration.Fmt(f.name, minPhaseDuration, maxPhaseDuration)
		}
	}

	return nil
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}

	if _, err := ParseLogLevel(c.System.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLogLevel converts a level name from the config file to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errInvalidLogLevel.Fmt(s)
	}

	return level, nil
}
