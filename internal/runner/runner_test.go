package runner

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/notify"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/session"
	"github.com/hvila/hvila/internal/testutil"
)

type fakeStore struct {
	mu    sync.Mutex
	stats []models.StatsDoc
}

func (f *fakeStore) SaveStats(doc models.StatsDoc) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stats = append(f.stats, doc)
}

func (f *fakeStore) SaveSettings(config.Settings) {}

func (f *fakeStore) last() models.StatsDoc {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stats[len(f.stats)-1]
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newTestRunner(
	t *testing.T,
	settings config.Settings,
	interval time.Duration,
) (*Runner, *fakeStore, *syncBuffer) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sess := session.New(settings, models.StatsDoc{}, session.Options{
		Rand:   testutil.Rand(7),
		Logger: logger,
	})

	store := &fakeStore{}
	out := &syncBuffer{}

	r := New(sess, Options{
		Store:    store,
		Sink:     notify.Func(func(notify.Notification) error { return nil }),
		Logger:   logger,
		Out:      out,
		Interval: interval,
	})

	return r, store, out
}

func fastSettings() config.Settings {
	s := config.DefaultSettings().WithCustomTimes(config.Durations{
		WorkTime:      2,
		MicroBreak:    1,
		ExerciseBreak: 1,
		LongBreak:     1,
	}).WithProfile(config.ProfileCustom)
	s.AutoStartBreaks = true
	s.AutoStartWork = true

	return s
}

func TestRunnerCyclesPhases(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, store, out := newTestRunner(t, fastSettings(), time.Millisecond)

	r.Start()

	require.Eventually(t, func() bool {
		return r.State().Stats.Sessions >= 2
	}, 5*time.Second, 5*time.Millisecond)

	r.Close()

	st := r.State()
	assert.False(t, st.Running)
	assert.Equal(t, st.Stats, store.last().Stats)
	assert.Contains(t, out.String(), "[Quick Break]")
	assert.Contains(t, out.String(), "[Exercise Break]")
}

func TestStartAndPauseAreIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)

	r.Start()
	ticker := r.ticker
	require.NotNil(t, ticker)

	r.Start()
	assert.Same(t, ticker, r.ticker)
	assert.True(t, r.State().Running)

	r.Pause()
	assert.Nil(t, r.ticker)

	r.Pause()
	assert.Nil(t, r.ticker)
	assert.False(t, r.State().Running)

	r.Close()
	r.Close()
}

func TestPausedRunnerDoesNotTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Millisecond)

	r.Start()
	r.Pause()

	remaining := r.State().CurrentTime

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, remaining, r.State().CurrentTime)

	r.Close()
}

func TestRunCommands(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, store, out := newTestRunner(t, config.DefaultSettings(), time.Hour)

	err := r.Run(context.Background(), strings.NewReader("s\ns\nx\nt\nr\nq\ns\n"))
	require.NoError(t, err)

	st := r.State()
	assert.Equal(t, phase.Work, st.Phase)
	assert.Equal(t, 1500, st.CurrentTime)
	assert.False(t, st.Running)
	assert.Equal(t, 1, st.Stats.Sessions)
	assert.Equal(t, 1, store.last().Stats.Sessions)

	text := out.String()
	assert.Contains(t, text, "Phase skipped")
	assert.Contains(t, text, "Quick neck stretch!")
	assert.Contains(t, text, `unknown command "x"`)
	assert.Contains(t, text, "Back to work! Check your posture.")
}

func TestRunEndsWithInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)

	require.NoError(t, r.Run(context.Background(), strings.NewReader("t\n")))
	assert.False(t, r.State().Running)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)

	pr, pw := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Run(ctx, pr))
	require.NoError(t, pw.Close())
}

func TestRunClosesInputOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)

	pr, pw := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Run(ctx, pr))

	_, err := pw.Write([]byte("t\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestStatusFileLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)
	r.opts.StatusPath = filepath.Join(t.TempDir(), "status.json")

	r.Start()

	require.Eventually(t, func() bool {
		_, err := os.Stat(r.opts.StatusPath)
		return err == nil
	}, 5*time.Second, 5*time.Millisecond)

	r.Close()

	_, err := os.Stat(r.opts.StatusPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecUnknownCommand(t *testing.T) {
	r, _, _ := newTestRunner(t, config.DefaultSettings(), time.Hour)

	quit, err := r.Exec("jump")
	assert.False(t, quit)
	assert.ErrorIs(t, err, errUnknownCommand)

	quit, err = r.Exec(" Q ")
	require.NoError(t, err)
	assert.True(t, quit)
}
