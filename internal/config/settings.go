package config

import (
	"slices"
	"time"
)

// Settings is the user preferences document. Values are immutable: every
// With* method returns a modified copy.
type Settings struct {
	Profile              string    `json:"profile"`
	CustomTimes          Durations `json:"customTimes"`
	SoundVolume          float64   `json:"soundVolume"`
	DailyGoal            int       `json:"dailyGoal"`
	SoundEnabled         bool      `json:"soundEnabled"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	AutoStartBreaks      bool      `json:"autoStartBreaks"`
	AutoStartWork        bool      `json:"autoStartWork"`
}

const (
	defaultDailyGoal   = 8
	defaultSoundVolume = 0.7

	minDailyGoal = 1
	maxDailyGoal = 20

	minPhaseDuration = 1 * time.Second
	maxPhaseDuration = 720 * time.Minute // 12 hours
)

// DefaultSettings returns the built-in preferences.
func DefaultSettings() Settings {
	return Settings{
		Profile:              ProfileStandard,
		SoundEnabled:         true,
		SoundVolume:          defaultSoundVolume,
		NotificationsEnabled: true,
		AutoStartBreaks:      false,
		AutoStartWork:        false,
		DailyGoal:            defaultDailyGoal,
		CustomTimes:          standardDurations,
	}
}

// Durations resolves the phase durations of the active profile. An unknown
// profile falls back to the standard preset.
func (s Settings) Durations() Durations {
	if s.Profile == ProfileCustom {
		return s.CustomTimes
	}

	p, ok := LookupProfile(s.Profile)
	if !ok {
		p = profiles[ProfileStandard]
	}

	return p.Durations
}

// WithProfile returns a copy of s using the named profile.
func (s Settings) WithProfile(name string) Settings {
	s.Profile = name

	return s
}

// WithCustomTimes returns a copy of s with new custom durations. Zero fields
// keep their current value.
func (s Settings) WithCustomTimes(d Durations) Settings {
	if d.WorkTime > 0 {
		s.CustomTimes.WorkTime = d.WorkTime
	}

	if d.MicroBreak > 0 {
		s.CustomTimes.MicroBreak = d.MicroBreak
	}

	if d.ExerciseBreak > 0 {
		s.CustomTimes.ExerciseBreak = d.ExerciseBreak
	}

	if d.LongBreak > 0 {
		s.CustomTimes.LongBreak = d.LongBreak
	}

	return s
}

// NextProfile returns a copy of s switched to the profile that follows (step
// 1) or precedes (step -1) the current one.
func (s Settings) NextProfile(step int) Settings {
	names := ProfileNames()

	i := slices.Index(names, s.Profile)
	if i < 0 {
		i = 0
	}

	i = ((i+step)%len(names) + len(names)) % len(names)

	return s.WithProfile(names[i])
}

// ProfileLabel returns the display name of the active profile.
func (s Settings) ProfileLabel() string {
	p, ok := LookupProfile(s.Profile)
	if !ok {
		return s.Profile
	}

	return p.Label
}
