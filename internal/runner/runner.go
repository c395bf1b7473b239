// Package runner drives a session without a terminal interface. Commands
// are read line by line and every phase change is printed.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/notify"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/session"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/internal/ui"
)

// Store persists the documents changed by the runner.
type Store interface {
	SaveStats(doc models.StatsDoc)
	SaveSettings(s config.Settings)
}

// Options configures a Runner.
type Options struct {
	Store      Store
	Sink       notify.Sink
	Logger     *slog.Logger
	Out        io.Writer
	StatusPath string
	// Interval is the wall clock length of one tick.
	Interval time.Duration
}

// Runner owns a session and its single ticker.
type Runner struct {
	mu   sync.Mutex
	sess *session.Session
	opts Options

	ticker *time.Ticker
	stop   chan struct{}
	loops  sync.WaitGroup

	// pending tracks fire-and-forget persistence and notification work.
	pending sync.WaitGroup
	saveMu  sync.Mutex
	saveSeq uint64
	saved   uint64

	closeOnce sync.Once
}

// New returns a paused runner for sess.
func New(sess *session.Session, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Sink == nil {
		opts.Sink = notify.Multi{}
	}

	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}

	return &Runner{
		sess: sess,
		opts: opts,
	}
}

// State returns a copy of the session state.
func (r *Runner) State() phase.State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sess.State()
}

// Start begins the countdown. Starting a running timer does nothing.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess.Start()
	r.syncTicker()
	r.writeStatus()
}

// Pause stops the countdown. Pausing a paused timer does nothing.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess.Pause()
	r.syncTicker()
	r.writeStatus()
}

// Toggle switches between running and paused.
func (r *Runner) Toggle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess.Toggle()
	r.syncTicker()
	r.writeStatus()

	st := r.sess.State()
	if st.Running {
		r.printf("%s %s\n", ui.Phase(st.Phase, "▶"), timeutil.Clock(st.CurrentTime))
	} else {
		r.printf("%s %s\n", ui.Phase(st.Phase, "⏸"), timeutil.Clock(st.CurrentTime))
	}
}

// Skip ends the current phase early.
func (r *Runner) Skip() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handleOutcome(r.sess.Skip())
	r.syncTicker()
	r.writeStatus()
}

// Reset returns to a paused work phase. Statistics are kept.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sess.Reset()
	r.syncTicker()
	r.writeStatus()

	st := r.sess.State()
	r.printf("%s %s\n", ui.Phase(st.Phase, st.Phase.Label()), timeutil.Clock(st.CurrentTime))
}

// syncTicker keeps exactly one ticker while the session runs and none
// while it is paused. Callers hold r.mu.
func (r *Runner) syncTicker() {
	running := r.sess.Running()

	switch {
	case running && r.ticker == nil:
		r.ticker = time.NewTicker(r.opts.Interval)
		r.stop = make(chan struct{})

		r.loops.Add(1)

		go r.loop(r.ticker, r.stop)
	case !running && r.ticker != nil:
		r.ticker.Stop()
		close(r.stop)

		r.ticker = nil
		r.stop = nil
	}
}

func (r *Runner) loop(ticker *time.Ticker, stop chan struct{}) {
	defer r.loops.Done()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.tick(stop)
		}
	}
}

func (r *Runner) tick(stop chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// the ticker was replaced or stopped while this tick was in flight
	if r.stop != stop {
		return
	}

	out := r.sess.Tick()

	r.handleOutcome(out)
	r.syncTicker()
	r.writeStatus()
}

// handleOutcome prints the events of an operation and dispatches its side
// effects without waiting for them. Callers hold r.mu.
func (r *Runner) handleOutcome(out session.Outcome) {
	for _, e := range out.Events {
		switch e.Type {
		case phase.EventTransition:
			r.printf(
				"%s %s %s\n",
				ui.Phase(e.Phase, "["+e.Label+"]"),
				e.Text,
				timeutil.Clock(e.Duration),
			)
		case phase.EventExercise:
			r.printf("  %s\n", ui.Highlight(e.Exercise.Title))

			for _, line := range strings.Split(strings.TrimSpace(e.Exercise.Description), "\n") {
				r.printf("    %s\n", line)
			}
		case phase.EventGoal:
			r.printf("%s\n", ui.Green(e.Text))
		default:
			r.printf("%s\n", e.Text)
		}
	}

	if n := notify.Notifications(out.Events); len(n) > 0 {
		r.notify(n)
	}

	if out.Stats != nil {
		r.saveStats(*out.Stats)
	}
}

func (r *Runner) notify(notifications []notify.Notification) {
	sink, logger := r.opts.Sink, r.opts.Logger

	r.async(func() {
		for _, n := range notifications {
			if err := sink.Notify(n); err != nil {
				logger.Warn(
					"notification failed",
					slog.String("phase", string(n.Phase)),
					slog.Any("error", err),
				)
			}
		}
	})
}

// saveStats persists doc in the background. A save that finishes after a
// newer one does not overwrite it.
func (r *Runner) saveStats(doc models.StatsDoc) {
	store := r.opts.Store
	if store == nil {
		return
	}

	r.saveSeq++
	seq := r.saveSeq

	r.async(func() {
		r.saveMu.Lock()
		defer r.saveMu.Unlock()

		if seq < r.saved {
			return
		}

		store.SaveStats(doc)
		r.saved = seq
	})
}

func (r *Runner) writeStatus() {
	path := r.opts.StatusPath
	if path == "" {
		return
	}

	st, logger := r.sess.Status(), r.opts.Logger

	r.async(func() {
		if err := session.WriteStatus(path, st); err != nil {
			logger.Debug("writing status file failed", slog.Any("error", err))
		}
	})
}

func (r *Runner) async(fn func()) {
	r.pending.Add(1)

	go func() {
		defer r.pending.Done()

		fn()
	}()
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprint(r.opts.Out, pterm.Sprintf(format, args...))
}

// Exec runs a single line command.
func (r *Runner) Exec(cmd string) (quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "":
		return false, nil
	case "t", "toggle":
		r.Toggle()
	case "s", "skip":
		r.Skip()
	case "r", "reset":
		r.Reset()
	case "q", "quit":
		return true, nil
	default:
		return false, errUnknownCommand.Fmt(cmd)
	}

	return false, nil
}

// Run reads commands from in until it is exhausted, a quit command is
// received, or ctx is cancelled. The runner is closed before Run returns.
// On cancellation in is closed when it implements io.Closer; otherwise the
// reading goroutine exits at the next line or at EOF.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	defer r.Close()

	if r.sess.Settings().AutoStartWork {
		r.Start()
	}

	st := r.State()
	r.printf(
		"%s %s (t: toggle, s: skip, r: reset, q: quit)\n",
		ui.Phase(st.Phase, "["+st.Phase.Label()+"]"),
		timeutil.Clock(st.CurrentTime),
	)

	lines := make(chan string)
	errCh := make(chan error, 1)
	done := make(chan struct{})

	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		if err := scanner.Err(); err != nil {
			errCh <- errReadCommands.Wrap(err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := in.(io.Closer); ok {
				_ = c.Close()
			}

			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errCh:
					return err
				default:
					return nil
				}
			}

			quit, err := r.Exec(line)
			if err != nil {
				pterm.Warning.WithWriter(r.opts.Out).Println(err.Error())
				continue
			}

			if quit {
				return nil
			}
		}
	}
}

// Close stops the ticker, saves the final statistics, waits for pending
// work and removes the status file. It is safe to call more than once.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.sess.Pause()
		r.syncTicker()
		r.saveStats(r.sess.StatsDoc())
		r.mu.Unlock()

		r.loops.Wait()
		r.pending.Wait()

		if r.opts.StatusPath != "" {
			err := os.Remove(r.opts.StatusPath)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				r.opts.Logger.Debug("removing status file failed", slog.Any("error", err))
			}
		}
	})
}
