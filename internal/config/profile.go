package config

import (
	"slices"
	"time"

	"github.com/maruel/natural"
)

// Profile names.
const (
	ProfileStandard     = "standard"
	ProfileDeepFocus    = "deepFocus"
	ProfileShortSprints = "shortSprints"
	ProfileCustom       = "custom"
)

// Durations holds the length of each phase in whole seconds.
type Durations struct {
	WorkTime      int `json:"workTime"`
	MicroBreak    int `json:"microBreak"`
	ExerciseBreak int `json:"exerciseBreak"`
	LongBreak     int `json:"longBreak"`
}

// Profile is a named bundle of phase durations.
type Profile struct {
	Name  string
	Label string
	Durations
}

func minutes(n int) int {
	return int((time.Duration(n) * time.Minute).Seconds())
}

var standardDurations = Durations{
	WorkTime:      minutes(25),
	MicroBreak:    minutes(2),
	ExerciseBreak: minutes(5),
	LongBreak:     minutes(15),
}

var profiles = map[string]Profile{
	ProfileStandard: {
		Name:      ProfileStandard,
		Label:     "Standard",
		Durations: standardDurations,
	},
	ProfileDeepFocus: {
		Name:  ProfileDeepFocus,
		Label: "Deep Focus",
		Durations: Durations{
			WorkTime:      minutes(52),
			MicroBreak:    minutes(3),
			ExerciseBreak: minutes(17),
			LongBreak:     minutes(30),
		},
	},
	ProfileShortSprints: {
		Name:  ProfileShortSprints,
		Label: "Short Sprints",
		Durations: Durations{
			WorkTime:      minutes(15),
			MicroBreak:    minutes(1),
			ExerciseBreak: minutes(3),
			LongBreak:     minutes(10),
		},
	},
	ProfileCustom: {
		Name:      ProfileCustom,
		Label:     "Custom",
		Durations: standardDurations,
	},
}

// LookupProfile returns the preset with the given name. The durations of the
// custom profile are placeholders; the real ones live in Settings.CustomTimes.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]

	return p, ok
}

// ProfileNames returns the names of all profiles in natural order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		if natural.Less(a, b) {
			return -1
		}

		if natural.Less(b, a) {
			return 1
		}

		return 0
	})

	return names
}
