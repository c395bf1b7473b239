package store

import (
	"encoding/json"
	"log/slog"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
)

// Adapter loads and saves the statistics and settings documents. Failures
// never reach the caller: they are logged and the documents degrade to their
// defaults.
type Adapter struct {
	db     DB
	logger *slog.Logger
}

// NewAdapter returns an Adapter over db. A nil logger means slog.Default().
func NewAdapter(db DB, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Adapter{
		db:     db,
		logger: logger.With(slog.String("component", "store")),
	}
}

// LoadStats returns the persisted statistics document. It reports false if
// the document is absent or unusable.
func (a *Adapter) LoadStats() (models.StatsDoc, bool) {
	var doc models.StatsDoc

	if !a.load(KeyState, &doc) {
		return models.StatsDoc{}, false
	}

	return doc, true
}

// SaveStats persists the statistics document.
func (a *Adapter) SaveStats(doc models.StatsDoc) {
	a.save(KeyState, doc)
}

// LoadSettings returns the persisted settings merged over the defaults. It
// reports false if the document is absent or unusable.
func (a *Adapter) LoadSettings() (config.Settings, bool) {
	s := config.DefaultSettings()

	if !a.load(KeySettings, &s) {
		return config.DefaultSettings(), false
	}

	if err := s.Validate(); err != nil {
		a.logger.Warn(
			"stored settings are out of range",
			slog.String("key", KeySettings),
			slog.Any("error", err),
		)
	}

	return s, true
}

// SaveSettings persists the settings document.
func (a *Adapter) SaveSettings(s config.Settings) {
	a.save(KeySettings, s)
}

func (a *Adapter) load(key string, v any) bool {
	b, err := a.db.Get(key)
	if err != nil {
		a.logger.Error(
			"reading document failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	if b == nil {
		return false
	}

	if err := json.Unmarshal(b, v); err != nil {
		a.logger.Warn(
			"ignoring malformed document",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

func (a *Adapter) save(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		a.logger.Error(
			"encoding document failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}

	if err := a.db.Put(key, b); err != nil {
		a.logger.Error(
			"writing document failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}

	a.logger.Debug("document saved", slog.String("key", key))
}
