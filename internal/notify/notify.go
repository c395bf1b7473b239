// Package notify delivers phase transitions to the user through desktop
// notifications, sound, and user-defined commands.
package notify

import (
	"errors"

	"github.com/hvila/hvila/internal/phase"
)

// Title is shown on every desktop notification.
const Title = "Hvila"

// Notification is a message about the timer.
type Notification struct {
	Phase phase.Phase
	Title string
	Text  string
}

// Sink consumes notifications.
type Sink interface {
	Notify(n Notification) error
}

// Func adapts a function to the Sink interface.
type Func func(n Notification) error

func (f Func) Notify(n Notification) error {
	return f(n)
}

// Multi delivers every notification to each of its sinks.
type Multi []Sink

// Notify calls every sink even if an earlier one fails.
func (m Multi) Notify(n Notification) error {
	var errs []error

	for _, s := range m {
		if err := s.Notify(n); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// FromEvent converts a core event to a notification. Exercise events are
// shown in the interface instead and are not notified.
func FromEvent(e phase.Event) (Notification, bool) {
	if e.Type == phase.EventExercise {
		return Notification{}, false
	}

	return Notification{
		Phase: e.Phase,
		Title: Title,
		Text:  e.Text,
	}, true
}

// Notifications converts all notifiable events.
func Notifications(events []phase.Event) []Notification {
	var out []Notification

	for _, e := range events {
		if n, ok := FromEvent(e); ok {
			out = append(out, n)
		}
	}

	return out
}
