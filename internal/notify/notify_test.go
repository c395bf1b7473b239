package notify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/osutil"
	"github.com/hvila/hvila/internal/phase"
)

var errBoom = errors.New("boom")

type fakePlayer struct {
	err     error
	volumes []float64
}

func (p *fakePlayer) Play(volume float64) error {
	p.volumes = append(p.volumes, volume)

	return p.err
}

func TestMultiCallsEverySink(t *testing.T) {
	var got []string

	record := func(name string, err error) Sink {
		return Func(func(n Notification) error {
			got = append(got, name+":"+n.Text)

			return err
		})
	}

	m := Multi{record("a", errBoom), record("b", nil)}

	err := m.Notify(Notification{Text: "hi"})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"a:hi", "b:hi"}, got)
}

func TestNotifications(t *testing.T) {
	events := []phase.Event{
		{Type: phase.EventSkipped, Phase: phase.Work, Text: "Phase skipped"},
		{Type: phase.EventTransition, Phase: phase.MicroBreak, Text: "Quick neck stretch!"},
		{Type: phase.EventExercise, Phase: phase.MicroBreak},
	}

	assert.Equal(t, []Notification{
		{Phase: phase.Work, Title: Title, Text: "Phase skipped"},
		{Phase: phase.MicroBreak, Title: Title, Text: "Quick neck stretch!"},
	}, Notifications(events))
}

func TestDesktop(t *testing.T) {
	type alert struct{ title, message, icon string }

	cases := []struct {
		name        string
		sound       bool
		notify      bool
		wantVolumes []float64
		wantAlerts  int
	}{
		{"everything on", true, true, []float64{0.4}, 1},
		{"sound only", true, false, []float64{0.4}, 0},
		{"notifications only", false, true, nil, 1},
		{"silent", false, false, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := config.DefaultSettings()
			s.SoundEnabled = tc.sound
			s.NotificationsEnabled = tc.notify
			s.SoundVolume = 0.4

			player := &fakePlayer{}

			var alerts []alert

			d := NewDesktop(config.DefaultSettings(), "/tmp/icon.png", player).
				WithSettings(s)
			d.alert = func(title, message, icon string) error {
				alerts = append(alerts, alert{title, message, icon})

				return nil
			}

			err := d.Notify(Notification{Title: Title, Text: "Quick neck stretch!"})
			require.NoError(t, err)

			assert.Equal(t, tc.wantVolumes, player.volumes)
			assert.Len(t, alerts, tc.wantAlerts)

			if tc.wantAlerts > 0 {
				assert.Equal(
					t,
					alert{Title, "Quick neck stretch!", "/tmp/icon.png"},
					alerts[0],
				)
			}
		})
	}
}

func TestDesktopErrors(t *testing.T) {
	d := NewDesktop(config.DefaultSettings(), "", &fakePlayer{err: errBoom})

	err := d.Notify(Notification{})
	assert.ErrorIs(t, err, errSound)
	assert.ErrorIs(t, err, errBoom)

	d = NewDesktop(config.DefaultSettings(), "", nil)
	d.alert = func(_, _, _ string) error { return errBoom }

	assert.ErrorIs(t, d.Notify(Notification{}), errDesktop)
}

func TestCommand(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("the session command test needs a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "phase.txt")

	c, err := NewCommand(
		context.Background(),
		`sh -c 'printf "%s" "$HVILA_PHASE" > "$0"' `+out,
	)
	require.NoError(t, err)

	require.NoError(t, c.Notify(Notification{Phase: phase.LongBreak}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "longBreak", string(b))
}

func TestCommandParsing(t *testing.T) {
	c, err := NewCommand(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, c.Notify(Notification{}))

	_, err = NewCommand(context.Background(), `echo "unterminated`)
	assert.ErrorIs(t, err, errParseCmd)

	c, err = NewCommand(context.Background(), "hvila-command-that-does-not-exist")
	require.NoError(t, err)

	err = c.Notify(Notification{})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `session command "hvila-command-that-does-not-exist" failed`))
}

func TestBellStreamerLength(t *testing.T) {
	s, err := bellStreamer(0.5)
	require.NoError(t, err)

	want := 0
	for _, d := range bellPattern {
		want += sampleRate.N(d)
	}

	buf := make([][2]float64, 512)
	total := 0

	for {
		n, ok := s.Stream(buf)
		total += n

		if !ok {
			break
		}
	}

	assert.Equal(t, want, total)
	assert.InDelta(t, 0.0, clampVolume(-1), 0.0001)
	assert.InDelta(t, 1.0, clampVolume(2), 0.0001)
}
