package config

import (
	"github.com/urfave/cli/v2"
)

// SettingsOverride holds settings supplied on the command line. Nil fields
// were not set and leave the underlying value alone.
type SettingsOverride struct {
	Profile              *string
	WorkTime             *int
	MicroBreak           *int
	ExerciseBreak        *int
	LongBreak            *int
	DailyGoal            *int
	SoundVolume          *float64
	SoundEnabled         *bool
	NotificationsEnabled *bool
	AutoStartBreaks      *bool
	AutoStartWork        *bool
}

// Apply returns a copy of s with every set override applied. Supplying any
// phase duration also switches to the custom profile unless a profile was
// given explicitly.
func (o SettingsOverride) Apply(s Settings) Settings {
	custom := Durations{
		WorkTime:      deref(o.WorkTime),
		MicroBreak:    deref(o.MicroBreak),
		ExerciseBreak: deref(o.ExerciseBreak),
		LongBreak:     deref(o.LongBreak),
	}

	if custom != (Durations{}) {
		if s.Profile != ProfileCustom {
			s = s.WithCustomTimes(s.Durations())
		}

		s = s.WithCustomTimes(custom).WithProfile(ProfileCustom)
	}

	if o.Profile != nil {
		s = s.WithProfile(*o.Profile)
	}

	if o.DailyGoal != nil {
		s.DailyGoal = *o.DailyGoal
	}

	if o.SoundVolume != nil {
		s.SoundVolume = *o.SoundVolume
	}

	if o.SoundEnabled != nil {
		s.SoundEnabled = *o.SoundEnabled
	}

	if o.NotificationsEnabled != nil {
		s.NotificationsEnabled = *o.NotificationsEnabled
	}

	if o.AutoStartBreaks != nil {
		s.AutoStartBreaks = *o.AutoStartBreaks
	}

	if o.AutoStartWork != nil {
		s.AutoStartWork = *o.AutoStartWork
	}

	return s
}

// IsZero reports whether no override was supplied.
func (o SettingsOverride) IsZero() bool {
	return o == SettingsOverride{}
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		o, err := OverridesFromCLI(ctx)
		if err != nil {
			return err
		}

		c.CLI.Overrides = o
		c.CLI.Headless = ctx.Bool("headless")
		c.CLI.Seed = ctx.Uint64("seed")

		if ctx.Bool("no-sound") {
			c.CLI.Overrides.SoundEnabled = ptr(false)
		}

		if ctx.Bool("disable-notification") {
			c.CLI.Overrides.NotificationsEnabled = ptr(false)
		}

		if cmd := ctx.String("session-cmd"); cmd != "" {
			c.System.SessionCmd = cmd
		}

		return nil
	}
}

// OverridesFromCLI reads the settings flags that were explicitly set.
func OverridesFromCLI(ctx *cli.Context) (SettingsOverride, error) {
	var o SettingsOverride

	if ctx.IsSet("profile") {
		o.Profile = ptr(ctx.String("profile"))
	}

	durations := []struct {
		dst  **int
		flag string
	}{
		{&o.WorkTime, "work"},
		{&o.MicroBreak, "micro-break"},
		{&o.ExerciseBreak, "exercise-break"},
		{&o.LongBreak, "long-break"},
	}

	for _, d := range durations {
		if !ctx.IsSet(d.flag) {
			continue
		}

		dur, err := parseDuration(ctx.String(d.flag))
		if err != nil {
			return o, errInvalidCLIDuration.Fmt(d.flag).Wrap(err)
		}

		*d.dst = ptr(int(dur.Seconds()))
	}

	if ctx.IsSet("daily-goal") {
		o.DailyGoal = ptr(ctx.Int("daily-goal"))
	}

	if ctx.IsSet("volume") {
		o.SoundVolume = ptr(ctx.Float64("volume"))
	}

	bools := []struct {
		dst  **bool
		flag string
	}{
		{&o.SoundEnabled, "sound"},
		{&o.NotificationsEnabled, "notifications"},
		{&o.AutoStartBreaks, "auto-start-breaks"},
		{&o.AutoStartWork, "auto-start-work"},
	}

	for _, b := range bools {
		if ctx.IsSet(b.flag) {
			*b.dst = ptr(ctx.Bool(b.flag))
		}
	}

	return o, nil
}

func ptr[T any](v T) *T {
	return &v
}

func deref(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}
