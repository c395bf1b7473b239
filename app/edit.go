package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/internal/ui"
	"github.com/hvila/hvila/store"
)

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

// printSettings prints the settings document in a readable form.
func printSettings(w io.Writer, s config.Settings) error {
	d := s.Durations()

	rows := [][]string{
		{"Profile", s.ProfileLabel() + " (" + s.Profile + ")"},
		{"Work", timeutil.Minutes(d.WorkTime)},
		{"Quick break", timeutil.Minutes(d.MicroBreak)},
		{"Exercise break", timeutil.Minutes(d.ExerciseBreak)},
		{"Long break", timeutil.Minutes(d.LongBreak)},
		{"Daily goal", fmt.Sprintf("%d sessions", s.DailyGoal)},
		{"Sound", fmt.Sprintf("%s (volume %d%%)", onOff(s.SoundEnabled), int(s.SoundVolume*100+0.5))},
		{"Notifications", onOff(s.NotificationsEnabled)},
		{"Auto-start breaks", onOff(s.AutoStartBreaks)},
		{"Auto-start work", onOff(s.AutoStartWork)},
	}

	return ui.PrintPairs(rows, w)
}

// putJSON encodes v and writes it under key.
func putJSON(db store.DB, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return db.Put(key, b)
}

// updateSettings applies the overrides to base, validates the result and
// saves it.
func updateSettings(
	db store.DB,
	base config.Settings,
	o config.SettingsOverride,
) (config.Settings, error) {
	next := o.Apply(base)

	if err := next.Validate(); err != nil {
		return base, err
	}

	if err := putJSON(db, store.KeySettings, next); err != nil {
		return base, err
	}

	return next, nil
}

// settingsAction prints the saved settings, or updates them when settings
// flags are given.
func settingsAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	adapter, err := e.openStore()
	if err != nil {
		return err
	}

	current, found := adapter.LoadSettings()
	if !found {
		current = e.cfg.Settings
	}

	if o := e.cfg.CLI.Overrides; !o.IsZero() {
		current, err = updateSettings(e.db, current, o)
		if err != nil {
			return err
		}

		pterm.Success.Println("Settings saved!")
	}

	return printSettings(config.Stdout, current)
}
