// Package timer operates the interactive hvila countdown
package timer

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/notify"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/session"
)

const (
	tickInterval    = time.Second
	messageDuration = 5 * time.Second
	warningSeconds  = 10
)

// Store persists the documents changed by the timer.
type Store interface {
	SaveStats(doc models.StatsDoc)
	SaveSettings(s config.Settings)
}

// Options configures the interactive timer.
type Options struct {
	Store Store
	// SinkFor builds the notification sink for the given settings.
	SinkFor        func(config.Settings) notify.Sink
	Logger         *slog.Logger
	StatusPath     string
	DarkTheme      bool
	TwentyFourHour bool
}

type (
	// tickMsg is delivered once per second while the countdown runs.
	// Ticks from an older chain carry a stale id and are dropped.
	tickMsg struct {
		id int
	}

	clearMessageMsg struct {
		id int
	}
)

// Timer is the bubbletea model of the interactive countdown.
type Timer struct {
	sess     *session.Session
	sink     notify.Sink
	exercise *exercise.Exercise
	// draft holds the edited settings while the settings panel is open.
	draft    *config.Settings
	opts     Options
	style    styles
	message  string
	help     help.Model
	progress progress.Model
	tickID   int
	msgID    int
	ticking  bool
}

// New returns the interactive timer for sess.
func New(sess *session.Session, opts Options) *Timer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.SinkFor == nil {
		opts.SinkFor = func(config.Settings) notify.Sink {
			return notify.Multi{}
		}
	}

	t := &Timer{
		sess:  sess,
		opts:  opts,
		style: newStyles(opts.DarkTheme),
		help:  help.New(),
		progress: progress.New(
			progress.WithSolidFill(phaseColors[phase.Work]),
			progress.WithoutPercentage(),
		),
	}

	t.progress.Width = maxWidth - padding*2 - 4
	t.sink = opts.SinkFor(sess.Settings())

	return t
}

// Init starts the countdown right away when work is set to auto-start.
func (t *Timer) Init() tea.Cmd {
	if t.sess.Settings().AutoStartWork {
		t.sess.Start()
	}

	return tea.Batch(
		tea.SetWindowTitle("hvila"),
		t.syncTicker(),
		t.writeStatus(),
	)
}

// tick schedules the next tick of the current chain.
func (t *Timer) tick() tea.Cmd {
	id := t.tickID

	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// syncTicker makes sure exactly one tick chain exists while the session
// runs and none while it is paused.
func (t *Timer) syncTicker() tea.Cmd {
	running := t.sess.Running()

	switch {
	case running && !t.ticking:
		t.ticking = true
		t.tickID++

		return t.tick()
	case !running && t.ticking:
		t.ticking = false
		t.tickID++
	}

	return nil
}

// handleOutcome renders the events of an operation and schedules its side
// effects. None of the returned commands block the countdown.
func (t *Timer) handleOutcome(out session.Outcome) tea.Cmd {
	var (
		cmds     []tea.Cmd
		messages []string
	)

	for _, e := range out.Events {
		switch e.Type {
		case phase.EventExercise:
			ex := e.Exercise
			t.exercise = &ex
		case phase.EventTransition:
			if !e.Phase.IsBreak() {
				t.exercise = nil
			}

			t.progress.FullColor = phaseColors[e.Phase]

			messages = append(messages, e.Text)
		default:
			messages = append(messages, e.Text)
		}
	}

	if len(messages) > 0 {
		cmds = append(cmds, t.showMessage(strings.Join(messages, "  ")))
	}

	if n := notify.Notifications(out.Events); len(n) > 0 {
		cmds = append(cmds, t.notify(n))
	}

	if out.Stats != nil {
		cmds = append(cmds, t.saveStats(*out.Stats))
	}

	return tea.Batch(cmds...)
}

func (t *Timer) showMessage(msg string) tea.Cmd {
	t.message = msg
	t.msgID++

	id := t.msgID

	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{id: id}
	})
}

// notify delivers notifications through the current sink.
func (t *Timer) notify(notifications []notify.Notification) tea.Cmd {
	sink, logger := t.sink, t.opts.Logger

	return func() tea.Msg {
		for _, n := range notifications {
			if err := sink.Notify(n); err != nil {
				logger.Warn(
					"notification failed",
					slog.String("phase", string(n.Phase)),
					slog.Any("error", err),
				)
			}
		}

		return nil
	}
}

func (t *Timer) saveStats(doc models.StatsDoc) tea.Cmd {
	store := t.opts.Store
	if store == nil {
		return nil
	}

	return func() tea.Msg {
		store.SaveStats(doc)

		return nil
	}
}

func (t *Timer) saveSettings(s config.Settings) tea.Cmd {
	store := t.opts.Store
	if store == nil {
		return nil
	}

	return func() tea.Msg {
		store.SaveSettings(s)

		return nil
	}
}

func (t *Timer) writeStatus() tea.Cmd {
	path := t.opts.StatusPath
	if path == "" {
		return nil
	}

	st, logger := t.sess.Status(), t.opts.Logger

	return func() tea.Msg {
		if err := session.WriteStatus(path, st); err != nil {
			logger.Debug("writing status file failed", slog.Any("error", err))
		}

		return nil
	}
}

func (t *Timer) removeStatus() tea.Cmd {
	path := t.opts.StatusPath
	if path == "" {
		return nil
	}

	return func() tea.Msg {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.opts.Logger.Debug("removing status file failed", slog.Any("error", err))
		}

		return nil
	}
}

// applySettings switches the session to s and persists it.
func (t *Timer) applySettings(s config.Settings) tea.Cmd {
	t.sess.ApplySettings(s)
	t.sink = t.opts.SinkFor(s)

	return tea.Batch(
		t.saveSettings(s),
		t.showMessage("Settings saved!"),
		t.syncTicker(),
		t.writeStatus(),
	)
}
