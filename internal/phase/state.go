package phase

import (
	"math/rand/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/streak"
	"github.com/hvila/hvila/internal/timeutil"
)

// State is the timer at one instant. CurrentTime is always within
// [0, TotalTime]. GoalDate is the last day the daily goal was announced and
// survives Reset.
type State struct {
	GoalDate     *timeutil.Date `json:"-"`
	Streak       streak.Streak  `json:"streak"`
	Phase        Phase          `json:"currentPhase"`
	Stats        models.Stats   `json:"stats"`
	CurrentTime  int            `json:"currentTime"`
	TotalTime    int            `json:"totalTime"`
	SessionCount int            `json:"sessionCount"`
	Running      bool           `json:"isRunning"`
}

// Env is everything a transition reads besides the state itself.
type Env struct {
	Catalog   *exercise.Catalog
	Rand      *rand.Rand
	Today     timeutil.Date
	Durations config.Durations
	DailyGoal int
}

// New returns the initial state: a full work phase, not running.
func New(d config.Durations) State {
	return seed(State{}, Work, d)
}

func seed(s State, p Phase, d config.Durations) State {
	s.Phase = p
	s.TotalTime = max(p.Duration(d), 1)
	s.CurrentTime = s.TotalTime

	return s
}

// Tick advances the countdown by one second, or moves to the next phase
// once the countdown has reached zero.
func Tick(s State, env Env) (State, []Event) {
	if s.CurrentTime > 0 {
		s.CurrentTime--

		return s, nil
	}

	return Advance(s, env)
}

// Advance ends the current phase. A break is always followed by work. A
// completed work session is counted and followed by a long break every
// fourth session, an exercise break every other session, and a micro break
// otherwise.
func Advance(s State, env Env) (State, []Event) {
	var events []Event

	if s.Phase.IsBreak() {
		s = seed(s, Work, env.Durations)

		return s, append(events, transitionEvent(Work, s.TotalTime))
	}

	s.SessionCount++
	s.Stats.Sessions++
	s.Streak = streak.Update(s.Streak, env.Today)

	p := next(s.SessionCount)
	if p == ExerciseBreak {
		s.Stats.Exercises++
	}

	s = seed(s, p, env.Durations)

	events = append(events, transitionEvent(p, s.TotalTime))

	if cat, ok := p.Category(); ok && env.Catalog != nil && env.Rand != nil {
		if ex, ok := env.Catalog.Pick(cat, env.Rand); ok {
			events = append(events, Event{
				Type:     EventExercise,
				Phase:    p,
				Exercise: ex,
			})
		}
	}

	if env.DailyGoal > 0 && TodaySessions(s, env.Today) >= env.DailyGoal &&
		(s.GoalDate == nil || *s.GoalDate != env.Today) {
		day := env.Today
		s.GoalDate = &day

		events = append(events, Event{
			Type:  EventGoal,
			Phase: p,
			Text:  goalText(env.DailyGoal),
		})
	}

	return s, events
}

// Skip expires the current phase immediately. The resulting transition is
// the same one natural expiry would produce.
func Skip(s State, env Env) (State, []Event) {
	skipped := Event{
		Type:  EventSkipped,
		Phase: s.Phase,
		Text:  skippedText,
	}

	s.CurrentTime = 0

	s, events := Tick(s, env)

	return s, append([]Event{skipped}, events...)
}

// Reset returns to a full, paused work phase and clears the session count.
// Stats and streak are kept.
func Reset(s State, d config.Durations) State {
	s = seed(s, Work, d)
	s.Running = false
	s.SessionCount = 0

	return s
}

// Reconfigure applies new phase durations. A paused timer restarts the
// current phase with its new length; a running one keeps counting down with
// the remaining time capped at the new length.
func Reconfigure(s State, d config.Durations) State {
	if !s.Running {
		return seed(s, s.Phase, d)
	}

	s.TotalTime = max(s.Phase.Duration(d), 1)
	s.CurrentTime = min(s.CurrentTime, s.TotalTime)

	return s
}

// TodaySessions returns the number of sessions completed today in this run.
func TodaySessions(s State, today timeutil.Date) int {
	if s.Streak.LastDate == nil || *s.Streak.LastDate != today {
		return 0
	}

	return s.SessionCount
}

// GoalProgress returns the fraction of the daily goal completed today,
// capped at 1.
func GoalProgress(s State, today timeutil.Date, goal int) float64 {
	if goal <= 0 {
		return 0
	}

	return min(1, float64(TodaySessions(s, today))/float64(goal))
}

// Elapsed returns the completed fraction of the current phase.
func Elapsed(s State) float64 {
	if s.TotalTime <= 0 {
		return 0
	}

	return float64(s.TotalTime-s.CurrentTime) / float64(s.TotalTime)
}
