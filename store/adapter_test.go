package store

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/streak"
	"github.com/hvila/hvila/internal/timeutil"
)

var errUnavailable = errors.New("store unavailable")

// memDB is an in-memory DB. When fail is set every call returns
// errUnavailable.
type memDB struct {
	docs map[string][]byte
	fail bool
}

func newMemDB() *memDB {
	return &memDB{docs: make(map[string][]byte)}
}

func (m *memDB) Get(key string) ([]byte, error) {
	if m.fail {
		return nil, errUnavailable
	}

	return m.docs[key], nil
}

func (m *memDB) Put(key string, value []byte) error {
	if m.fail {
		return errUnavailable
	}

	m.docs[key] = value

	return nil
}

func (m *memDB) Replace(docs map[string][]byte) error {
	for k, v := range docs {
		if err := m.Put(k, v); err != nil {
			return err
		}
	}

	return nil
}

func (m *memDB) Close() error {
	return nil
}

func newTestAdapter(db DB) (*Adapter, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return NewAdapter(db, logger), &buf
}

func TestAdapterStatsRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	a, _ := newTestAdapter(c)

	_, ok := a.LoadStats()
	assert.False(t, ok)

	today := timeutil.Date{Year: 2026, Month: time.October, Day: 16}
	doc := models.NewStatsDoc(
		models.Stats{Sessions: 9, Exercises: 2},
		streak.Streak{Current: 2, Longest: 6, LastDate: &today},
		time.UnixMilli(1760600000000),
	)

	a.SaveStats(doc)

	got, ok := a.LoadStats()
	require.True(t, ok)
	assert.Equal(t, doc, got)
}

func TestAdapterSettingsMergeOverDefaults(t *testing.T) {
	db := newMemDB()
	db.docs[KeySettings] = []byte(`{"profile":"deepFocus","dailyGoal":4,"theme":"dark"}`)

	a, _ := newTestAdapter(db)

	got, ok := a.LoadSettings()
	require.True(t, ok)

	want := config.DefaultSettings().WithProfile(config.ProfileDeepFocus)
	want.DailyGoal = 4

	assert.Equal(t, want, got)
}

func TestAdapterMalformedDocument(t *testing.T) {
	db := newMemDB()
	db.docs[KeySettings] = []byte(`{"profile":`)
	db.docs[KeyState] = []byte(`[1,2,3]`)

	a, logs := newTestAdapter(db)

	s, ok := a.LoadSettings()
	assert.False(t, ok)
	assert.Equal(t, config.DefaultSettings(), s)

	doc, ok := a.LoadStats()
	assert.False(t, ok)
	assert.Equal(t, models.StatsDoc{}, doc)

	assert.Contains(t, logs.String(), "ignoring malformed document")
}

func TestAdapterUnavailableStore(t *testing.T) {
	db := newMemDB()
	db.fail = true

	a, logs := newTestAdapter(db)

	_, ok := a.LoadStats()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		a.SaveStats(models.StatsDoc{Stats: models.Stats{Sessions: 1}})
		a.SaveSettings(config.DefaultSettings())
	})

	assert.Contains(t, logs.String(), "reading document failed")
	assert.Contains(t, logs.String(), "writing document failed")
	assert.Contains(t, logs.String(), errUnavailable.Error())
}

func TestAdapterOutOfRangeSettingsAreKept(t *testing.T) {
	db := newMemDB()
	db.docs[KeySettings] = []byte(`{"soundVolume":3}`)

	a, logs := newTestAdapter(db)

	s, ok := a.LoadSettings()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, s.SoundVolume, 0.0001)
	assert.Contains(t, logs.String(), "stored settings are out of range")
}
