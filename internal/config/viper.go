package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyProfile              = "timer.profile"
	keyDailyGoal            = "timer.daily_goal"
	keyAutoStartBreaks      = "timer.auto_start_breaks"
	keyAutoStartWork        = "timer.auto_start_work"
	keyCustomWork           = "custom.work"
	keyCustomMicroBreak     = "custom.micro_break"
	keyCustomExerciseBreak  = "custom.exercise_break"
	keyCustomLongBreak      = "custom.long_break"
	keySoundEnabled         = "sound.enabled"
	keySoundVolume          = "sound.volume"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file populated with the current values is written when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the current config values as Viper defaults, so that
// answers from the first-run prompt end up in the written file.
func setupViper(v *viper.Viper, c *Config) {
	s := c.Settings

	v.SetDefault(keyProfile, s.Profile)
	v.SetDefault(keyDailyGoal, s.DailyGoal)
	v.SetDefault(keyAutoStartBreaks, s.AutoStartBreaks)
	v.SetDefault(keyAutoStartWork, s.AutoStartWork)
	v.SetDefault(keyCustomWork, secondsToString(s.CustomTimes.WorkTime))
	v.SetDefault(keyCustomMicroBreak, secondsToString(s.CustomTimes.MicroBreak))
	v.SetDefault(
		keyCustomExerciseBreak,
		secondsToString(s.CustomTimes.ExerciseBreak),
	)
	v.SetDefault(keyCustomLongBreak, secondsToString(s.CustomTimes.LongBreak))
	v.SetDefault(keySoundEnabled, s.SoundEnabled)
	v.SetDefault(keySoundVolume, s.SoundVolume)
	v.SetDefault(keyNotificationsEnabled, s.NotificationsEnabled)
	v.SetDefault(keySessionCmd, c.System.SessionCmd)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyTwentyFourHour, c.Display.TwentyFourHour)
	v.SetDefault(keyLogLevel, c.System.LogLevel)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	custom, err := loadDurations(v)
	if err != nil {
		return fmt.Errorf("loading durations failed: %w", err)
	}

	c.Settings = Settings{
		Profile:              v.GetString(keyProfile),
		CustomTimes:          custom,
		SoundVolume:          v.GetFloat64(keySoundVolume),
		DailyGoal:            v.GetInt(keyDailyGoal),
		SoundEnabled:         v.GetBool(keySoundEnabled),
		NotificationsEnabled: v.GetBool(keyNotificationsEnabled),
		AutoStartBreaks:      v.GetBool(keyAutoStartBreaks),
		AutoStartWork:        v.GetBool(keyAutoStartWork),
	}

	c.System.SessionCmd = v.GetString(keySessionCmd)
	c.System.LogLevel = v.GetString(keyLogLevel)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	return nil
}

// loadDurations handles parsing the custom profile's duration strings.
func loadDurations(v *viper.Viper) (Durations, error) {
	var d Durations

	fields := []struct {
		dst *int
		key string
	}{
		{&d.WorkTime, keyCustomWork},
		{&d.MicroBreak, keyCustomMicroBreak},
		{&d.ExerciseBreak, keyCustomExerciseBreak},
		{&d.LongBreak, keyCustomLongBreak},
	}

	for _, f := range fields {
		dur, err := parseDuration(v.GetString(f.key))
		if err != nil {
			return d, fmt.Errorf("invalid duration for %s: %w", f.key, err)
		}

		*f.dst = int(dur.Seconds())
	}

	return d, nil
}

// parseDuration accepts Go duration strings. Bare numbers are minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}

func secondsToString(secs int) string {
	return (time.Duration(secs) * time.Second).String()
}
