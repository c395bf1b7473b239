package session

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/streak"
	"github.com/hvila/hvila/internal/testutil"
)

var now = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.Local)

func newTestSession(t *testing.T, settings config.Settings, doc models.StatsDoc) *Session {
	t.Helper()

	return New(settings, doc, Options{
		Rand:   testutil.Rand(1),
		Now:    func() time.Time { return now },
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
}

func TestNewUpdatesStreak(t *testing.T) {
	yesterday := testutil.Date(2026, time.October, 15)

	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{
		Stats:  models.Stats{Sessions: 10, Exercises: 3},
		Streak: &streak.Streak{Current: 3, Longest: 5, LastDate: &yesterday},
	})

	st := s.State()
	assert.Equal(t, models.Stats{Sessions: 10, Exercises: 3}, st.Stats)
	assert.Equal(t, 4, st.Streak.Current)
	assert.Equal(t, 5, st.Streak.Longest)
	assert.Equal(t, phase.Work, st.Phase)
	assert.Equal(t, 1500, st.CurrentTime)
	assert.False(t, st.Running)
}

func TestStartPauseAreIdempotent(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})

	assert.True(t, s.Start())
	assert.False(t, s.Start())
	assert.True(t, s.Running())

	assert.True(t, s.Pause())
	assert.False(t, s.Pause())
	assert.False(t, s.Running())

	s.Toggle()
	assert.True(t, s.Running())
	s.Toggle()
	assert.False(t, s.Running())
}

func TestTickWithoutTransition(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})
	s.Start()

	out := s.Tick()

	assert.False(t, out.Transitioned)
	assert.Nil(t, out.Stats)
	assert.Empty(t, out.Events)
	assert.Equal(t, 1499, s.State().CurrentTime)
	assert.True(t, s.Running())
}

func TestAutoStart(t *testing.T) {
	cases := []struct {
		name        string
		breaks      bool
		work        bool
		wantOnBreak bool
		wantOnWork  bool
	}{
		{"manual", false, false, false, false},
		{"breaks only", true, false, true, false},
		{"work only", false, true, false, true},
		{"both", true, true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.AutoStartBreaks = tc.breaks
			settings.AutoStartWork = tc.work

			s := newTestSession(t, settings, models.StatsDoc{})

			out := s.Skip()
			require.True(t, out.Transitioned)
			require.NotNil(t, out.Stats)
			assert.Equal(t, 1, out.Stats.Stats.Sessions)
			assert.Equal(t, phase.MicroBreak, s.State().Phase)
			assert.Equal(t, tc.wantOnBreak, s.Running())

			s.Pause()
			s.Skip()
			assert.Equal(t, phase.Work, s.State().Phase)
			assert.Equal(t, tc.wantOnWork, s.Running())
		})
	}
}

func TestRunningCountdownContinuesAcrossExpiry(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})
	s.Start()

	var out Outcome

	for !out.Transitioned {
		out = s.Tick()
	}

	assert.Equal(t, phase.MicroBreak, s.State().Phase)
	assert.True(t, s.Running())

	out = Outcome{}
	for !out.Transitioned {
		out = s.Tick()
	}

	assert.Equal(t, phase.Work, s.State().Phase)
	assert.True(t, s.Running())
	assert.Equal(t, 1, s.State().Stats.Sessions)
}

func TestSkipEvents(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})

	out := s.Skip()

	require.Len(t, out.Events, 3)
	assert.Equal(t, phase.EventSkipped, out.Events[0].Type)
	assert.Equal(t, phase.EventTransition, out.Events[1].Type)
	assert.Equal(t, phase.EventExercise, out.Events[2].Type)
	assert.Equal(t, now.UnixMilli(), out.Stats.Timestamp)
}

func TestResetKeepsStats(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})
	s.Skip()
	s.Skip()
	s.Skip()
	s.Start()

	s.Reset()

	st := s.State()
	assert.Equal(t, phase.Work, st.Phase)
	assert.Equal(t, 1500, st.CurrentTime)
	assert.False(t, st.Running)
	assert.Zero(t, st.SessionCount)
	assert.Equal(t, 2, st.Stats.Sessions)
}

func TestApplySettings(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{})

	s.ApplySettings(config.DefaultSettings().WithProfile(config.ProfileShortSprints))

	assert.Equal(t, config.ProfileShortSprints, s.Settings().Profile)
	assert.Equal(t, 900, s.State().TotalTime)
	assert.Equal(t, 900, s.State().CurrentTime)
}

func TestResetStats(t *testing.T) {
	s := newTestSession(t, config.DefaultSettings(), models.StatsDoc{
		Stats: models.Stats{Sessions: 4, Exercises: 1},
	})

	doc := s.ResetStats()
	assert.Equal(t, models.Stats{}, doc.Stats)
	assert.Equal(t, streak.Streak{}, *doc.Streak)
	assert.Equal(t, models.Stats{}, s.State().Stats)
}
