// Package session runs the phase state machine for one invocation of the
// program. It owns the current state and settings and tells the drivers
// which side effects each operation requires.
package session

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/streak"
	"github.com/hvila/hvila/internal/timeutil"
)

// Options configures a Session.
type Options struct {
	Catalog *exercise.Catalog
	Rand    *rand.Rand
	Now     func() time.Time
	Logger  *slog.Logger
}

// Outcome lists what a driver must do after an operation.
type Outcome struct {
	// Stats is set when the statistics document changed and must be saved.
	Stats *models.StatsDoc
	// Events must be rendered or delivered to the notification sink.
	Events []phase.Event
	// Transitioned is true when a new phase began.
	Transitioned bool
}

// Session holds the timer state of one run.
type Session struct {
	opts     Options
	settings config.Settings
	state    phase.State
}

// New starts a session from the persisted documents. The streak is brought
// up to date for today.
func New(settings config.Settings, doc models.StatsDoc, opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = exercise.Default()
	}

	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Session{
		opts:     opts,
		settings: settings,
		state:    phase.New(settings.Durations()),
	}

	s.state.Stats = doc.Stats
	s.state.Streak = streak.Update(doc.StreakOrZero(), s.Today())

	return s
}

// State returns a copy of the current state.
func (s *Session) State() phase.State {
	return s.state
}

// Settings returns the active settings.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Today returns the current calendar date.
func (s *Session) Today() timeutil.Date {
	return timeutil.DateOf(s.opts.Now())
}

// Now returns the current time.
func (s *Session) Now() time.Time {
	return s.opts.Now()
}

// StatsDoc returns the statistics document for the current state.
func (s *Session) StatsDoc() models.StatsDoc {
	return models.NewStatsDoc(s.state.Stats, s.state.Streak, s.opts.Now())
}

// Running reports whether the countdown is active.
func (s *Session) Running() bool {
	return s.state.Running
}

// Start marks the countdown as running. It reports false if it already was.
func (s *Session) Start() bool {
	if s.state.Running {
		return false
	}

	s.state.Running = true

	return true
}

// Pause stops the countdown. It reports false if it was not running.
func (s *Session) Pause() bool {
	if !s.state.Running {
		return false
	}

	s.state.Running = false

	return true
}

// Toggle starts a paused countdown or pauses a running one.
func (s *Session) Toggle() {
	if !s.Start() {
		s.Pause()
	}
}

// Tick advances the countdown by one second.
func (s *Session) Tick() Outcome {
	next, events := phase.Tick(s.state, s.env())

	return s.apply(next, events)
}

// Skip ends the current phase immediately.
func (s *Session) Skip() Outcome {
	next, events := phase.Skip(s.state, s.env())

	s.opts.Logger.Info("phase skipped", slog.String("phase", string(s.state.Phase)))

	return s.apply(next, events)
}

// Reset returns to a paused work phase. Statistics are kept.
func (s *Session) Reset() {
	s.state = phase.Reset(s.state, s.settings.Durations())
}

// ApplySettings switches to new settings and re-seeds the countdown.
func (s *Session) ApplySettings(settings config.Settings) {
	s.settings = settings
	s.state = phase.Reconfigure(s.state, settings.Durations())

	s.opts.Logger.Info(
		"settings applied",
		slog.String("profile", settings.Profile),
		slog.Int("total_time", s.state.TotalTime),
	)
}

// ResetStats zeroes the statistics and the streak.
func (s *Session) ResetStats() models.StatsDoc {
	s.state.Stats = models.Stats{}
	s.state.Streak = streak.Streak{}

	return s.StatsDoc()
}

func (s *Session) env() phase.Env {
	return phase.Env{
		Catalog:   s.opts.Catalog,
		Rand:      s.opts.Rand,
		Today:     s.Today(),
		Durations: s.settings.Durations(),
		DailyGoal: s.settings.DailyGoal,
	}
}

// apply commits a transition. A running countdown keeps running into the
// next phase; a paused one starts only if the matching auto-start setting
// is on.
func (s *Session) apply(next phase.State, events []phase.Event) Outcome {
	s.state = next

	var out Outcome

	out.Events = events

	for _, e := range events {
		if e.Type == phase.EventTransition {
			out.Transitioned = true
		}
	}

	if !out.Transitioned {
		return out
	}

	s.state.Running = s.state.Running || s.autoStart(s.state.Phase)

	doc := s.StatsDoc()
	out.Stats = &doc

	s.opts.Logger.Info(
		"phase started",
		slog.String("phase", string(s.state.Phase)),
		slog.Int("duration", s.state.TotalTime),
		slog.Int("sessions", s.state.Stats.Sessions),
		slog.Bool("running", s.state.Running),
	)

	return out
}

func (s *Session) autoStart(p phase.Phase) bool {
	if p.IsBreak() {
		return s.settings.AutoStartBreaks
	}

	return s.settings.AutoStartWork
}
