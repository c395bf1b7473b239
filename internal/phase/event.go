package phase

import (
	"fmt"

	"github.com/hvila/hvila/internal/exercise"
)

// EventType identifies what an Event reports.
type EventType string

const (
	// EventTransition reports the start of a new phase.
	EventTransition EventType = "transition"
	// EventExercise carries the exercise selected for a break.
	EventExercise EventType = "exercise"
	// EventSkipped reports that the previous phase was cut short.
	EventSkipped EventType = "skipped"
	// EventGoal reports that the daily goal was reached.
	EventGoal EventType = "goal"
)

const skippedText = "Phase skipped"

// Event is produced by a transition and consumed by the drivers.
type Event struct {
	Exercise exercise.Exercise `json:"exercise,omitzero"`
	Type     EventType         `json:"type"`
	Phase    Phase             `json:"phase"`
	Label    string            `json:"label,omitempty"`
	Text     string            `json:"text,omitempty"`
	Duration int               `json:"durationSeconds,omitempty"`
}

func transitionEvent(p Phase, duration int) Event {
	return Event{
		Type:     EventTransition,
		Phase:    p,
		Duration: duration,
		Label:    p.Label(),
		Text:     p.Text(),
	}
}

func goalText(goal int) string {
	return fmt.Sprintf("Goal reached! %d sessions completed today!", goal)
}
