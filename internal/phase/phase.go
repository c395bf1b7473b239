// Package phase implements the work/break cycle. Every operation is a pure
// function from one State to the next, returning the events that the
// transition produced for the drivers to render and dispatch.
package phase

import (
	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
)

// Phase is one of the four timer states.
type Phase string

const (
	Work          Phase = "work"
	MicroBreak    Phase = "microBreak"
	ExerciseBreak Phase = "exerciseBreak"
	LongBreak     Phase = "longBreak"
)

// Phases lists every phase in cycle order.
var Phases = []Phase{Work, MicroBreak, ExerciseBreak, LongBreak}

type details struct {
	label    string
	text     string
	category exercise.Category
}

var phaseDetails = map[Phase]details{
	Work: {
		label: "Focus Time",
		text:  "Back to work! Check your posture.",
	},
	MicroBreak: {
		label:    "Quick Break",
		text:     "Quick neck stretch!",
		category: exercise.Micro,
	},
	ExerciseBreak: {
		label:    "Exercise Break",
		text:     "Neck & shoulder exercises time!",
		category: exercise.Stretch,
	},
	LongBreak: {
		label:    "Long Break",
		text:     "Time for a long break! Walk and stretch.",
		category: exercise.Long,
	},
}

// Label returns the display name of the phase.
func (p Phase) Label() string {
	return phaseDetails[p].label
}

// Text returns the notification text shown when the phase begins.
func (p Phase) Text() string {
	return phaseDetails[p].text
}

// Category returns the exercise category surfaced during a break phase.
func (p Phase) Category() (exercise.Category, bool) {
	c := phaseDetails[p].category

	return c, c != ""
}

// IsBreak reports whether p is one of the break phases.
func (p Phase) IsBreak() bool {
	return p != Work
}

// Duration returns the length of p in seconds.
func (p Phase) Duration(d config.Durations) int {
	switch p {
	case MicroBreak:
		return d.MicroBreak
	case ExerciseBreak:
		return d.ExerciseBreak
	case LongBreak:
		return d.LongBreak
	default:
		return d.WorkTime
	}
}

// next selects the break that follows the n-th completed work session.
func next(sessionCount int) Phase {
	switch {
	case sessionCount%4 == 0:
		return LongBreak
	case sessionCount%2 == 0:
		return ExerciseBreak
	default:
		return MicroBreak
	}
}
