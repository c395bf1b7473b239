package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/streak"
	"github.com/hvila/hvila/internal/testutil"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/store"
)

func plain(t *testing.T) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
}

func newClient(t *testing.T) *store.Client {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "hvila.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestPrintStats(t *testing.T) {
	plain(t)

	today := testutil.Date(2026, time.October, 16)
	yesterday := today.AddDays(-1)
	lastWeek := today.AddDays(-7)

	cases := []struct {
		name    string
		doc     models.StatsDoc
		want    []string
		notWant []string
	}{
		{
			name: "alive streak",
			doc: models.StatsDoc{
				Stats:  models.Stats{Sessions: 12, Exercises: 4},
				Streak: &streak.Streak{Current: 3, Longest: 5, LastDate: &yesterday},
			},
			want: []string{"12", "4", "3 days", "5 days", "2026-10-15", "8 sessions"},
		},
		{
			name: "broken streak",
			doc: models.StatsDoc{
				Stats:  models.Stats{Sessions: 1},
				Streak: &streak.Streak{Current: 1, Longest: 1, LastDate: &lastWeek},
			},
			want:    []string{"0 days", "1 day", "2026-10-09"},
			notWant: []string{"1 days"},
		},
		{
			name: "no activity",
			doc:  models.StatsDoc{},
			want: []string{"never", "0 days"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := printStats(&buf, tc.doc, config.DefaultSettings(), today)
			require.NoError(t, err)

			for _, s := range tc.want {
				assert.Contains(t, buf.String(), s)
			}

			for _, s := range tc.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestPrintProfiles(t *testing.T) {
	plain(t)

	var buf bytes.Buffer

	settings := config.DefaultSettings().
		WithCustomTimes(config.Durations{WorkTime: 40 * 60}).
		WithProfile(config.ProfileDeepFocus)

	require.NoError(t, printProfiles(&buf, settings))

	lines := strings.Split(buf.String(), "\n")

	var order []string

	for _, line := range lines {
		for _, name := range config.ProfileNames() {
			if strings.Contains(line, "("+name+")") {
				order = append(order, name)
			}
		}
	}

	assert.Equal(t, config.ProfileNames(), order)

	for _, line := range lines {
		switch {
		case strings.Contains(line, "(custom)"):
			assert.Contains(t, line, "40m")
		case strings.Contains(line, "(deepFocus)"):
			assert.Contains(t, line, "*")
			assert.Contains(t, line, "52m")
		case strings.Contains(line, "(standard)"):
			assert.NotContains(t, line, "*")
		}
	}
}

func TestPrintExercises(t *testing.T) {
	plain(t)

	var buf bytes.Buffer

	catalog := exercise.Default()

	err := printExercises(&buf, catalog, []exercise.Category{exercise.Long})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "LONG")
	assert.NotContains(t, buf.String(), "MICRO")

	for _, ex := range catalog.List(exercise.Long) {
		assert.Contains(t, buf.String(), ex.Title)
	}
}

func TestUpdateSettings(t *testing.T) {
	c := newClient(t)

	work := 30 * 60
	goal := 6

	got, err := updateSettings(c, config.DefaultSettings(), config.SettingsOverride{
		WorkTime:  &work,
		DailyGoal: &goal,
	})
	require.NoError(t, err)

	assert.Equal(t, config.ProfileCustom, got.Profile)
	assert.Equal(t, work, got.Durations().WorkTime)
	assert.Equal(t, 2*60, got.Durations().MicroBreak)

	b, err := c.Get(store.KeySettings)
	require.NoError(t, err)

	var saved config.Settings

	require.NoError(t, json.Unmarshal(b, &saved))

	if diff := cmp.Diff(got, saved); diff != "" {
		t.Fatalf("saved settings mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateSettingsRejectsInvalidValues(t *testing.T) {
	c := newClient(t)

	goal := 50

	got, err := updateSettings(c, config.DefaultSettings(), config.SettingsOverride{
		DailyGoal: &goal,
	})
	require.Error(t, err)
	assert.Equal(t, config.DefaultSettings(), got)

	b, err := c.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestPrintSettings(t *testing.T) {
	plain(t)

	var buf bytes.Buffer

	require.NoError(t, printSettings(&buf, config.DefaultSettings()))

	for _, s := range []string{"Standard (standard)", "25m", "on (volume 70%)", "8 sessions"} {
		assert.Contains(t, buf.String(), s)
	}
}

func TestExportImportFile(t *testing.T) {
	src := newClient(t)

	doc := models.NewStatsDoc(
		models.Stats{Sessions: 9, Exercises: 4},
		streak.Streak{Current: 2, Longest: 2},
		time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC),
	)

	require.NoError(t, putJSON(src, store.KeyState, doc))

	path := filepath.Join(t.TempDir(), "backup.json")

	got, err := exportFile(src, path, time.Now())
	require.NoError(t, err)
	assert.Equal(t, path, got)

	dst := newClient(t)
	require.NoError(t, importFile(dst, path))

	b, err := dst.Get(store.KeyState)
	require.NoError(t, err)

	var imported models.StatsDoc

	require.NoError(t, json.Unmarshal(b, &imported))
	assert.Equal(t, doc.Stats, imported.Stats)
	assert.Equal(t, doc.Timestamp, imported.Timestamp)
}

func TestExportDefaultFileName(t *testing.T) {
	t.Chdir(t.TempDir())

	now := time.Date(2026, time.October, 16, 22, 0, 0, 0, time.Local)

	path, err := exportFile(newClient(t), "", now)
	require.NoError(t, err)
	assert.Equal(t, "hvila-backup-2026-10-16.json", path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestImportInvalidFile(t *testing.T) {
	c := newClient(t)

	path := testutil.WriteFile(t, "bad.json", `{"settings": [1, 2]}`)

	err := importFile(c, path)
	assert.ErrorIs(t, err, errInvalidFileFormat)
	assert.Equal(t, "Invalid file format!", strings.SplitN(err.Error(), ":", 2)[0])
}

func TestResetStats(t *testing.T) {
	plain(t)

	today := timeutil.Today()
	doc := models.StatsDoc{
		Stats:  models.Stats{Sessions: 5, Exercises: 2},
		Streak: &streak.Streak{Current: 2, Longest: 4, LastDate: &today},
	}

	t.Run("aborted without confirmation", func(t *testing.T) {
		c := newClient(t)
		require.NoError(t, putJSON(c, store.KeyState, doc))

		var out bytes.Buffer

		err := resetStats(c, doc, config.DefaultSettings(), strings.NewReader(""), &out, false)
		assert.ErrorIs(t, err, errResetAborted)
		assert.Contains(t, out.String(), "Press ENTER to proceed")

		b, err := c.Get(store.KeyState)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"sessions":5`)
	})

	t.Run("confirmed with enter", func(t *testing.T) {
		c := newClient(t)

		var out bytes.Buffer

		err := resetStats(c, doc, config.DefaultSettings(), strings.NewReader("\n"), &out, false)
		require.NoError(t, err)

		b, err := c.Get(store.KeyState)
		require.NoError(t, err)

		var got models.StatsDoc

		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, models.Stats{}, got.Stats)
		assert.Equal(t, streak.Streak{}, got.StreakOrZero())
	})

	t.Run("confirmed with flag", func(t *testing.T) {
		c := newClient(t)

		var out bytes.Buffer

		err := resetStats(c, doc, config.DefaultSettings(), strings.NewReader(""), &out, true)
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, newRand(0))

	a, b := newRand(42), newRand(42)
	assert.Equal(t, a.Uint64(), b.Uint64())
}
