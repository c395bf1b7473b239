package timer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/logging"
)

const (
	volumeStep = 0.1
	maxGoal    = 20
	minGoal    = 1
)

// handleTick applies one tick of the current chain.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.id != t.tickID || !t.ticking {
		return t, nil
	}

	// the message that was in flight has been consumed
	t.ticking = false

	if !t.sess.Running() {
		return t, nil
	}

	out := t.sess.Tick()

	return t, tea.Batch(
		t.handleOutcome(out),
		t.syncTicker(),
		t.writeStatus(),
	)
}

func (t *Timer) quit() (tea.Model, tea.Cmd) {
	t.sess.Pause()
	t.syncTicker()

	return t, tea.Sequence(
		t.saveStats(t.sess.StatsDoc()),
		t.removeStatus(),
		tea.Quit,
	)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.draft != nil {
		return t.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		t.sess.Toggle()

		return t, tea.Batch(t.syncTicker(), t.writeStatus())

	case key.Matches(msg, defaultKeymap.skip):
		out := t.sess.Skip()

		return t, tea.Batch(
			t.handleOutcome(out),
			t.syncTicker(),
			t.writeStatus(),
		)

	case key.Matches(msg, defaultKeymap.reset):
		t.sess.Reset()
		t.exercise = nil
		t.progress.FullColor = phaseColors[t.sess.State().Phase]

		return t, tea.Batch(t.syncTicker(), t.writeStatus())

	case key.Matches(msg, defaultKeymap.settings):
		draft := t.sess.Settings()
		t.draft = &draft

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		return t.quit()
	}

	return t, nil
}

func (t *Timer) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := defaultSettingsKeymap
	d := *t.draft

	switch {
	case msg.String() == "ctrl+c":
		return t.quit()
	case key.Matches(msg, km.close):
		t.draft = nil

		return t, nil
	case key.Matches(msg, km.save):
		t.draft = nil

		return t, t.applySettings(d)
	case key.Matches(msg, km.nextProfile):
		d = d.NextProfile(1)
	case key.Matches(msg, km.prevProfile):
		d = d.NextProfile(-1)
	case key.Matches(msg, km.goalUp):
		d.DailyGoal = min(maxGoal, d.DailyGoal+1)
	case key.Matches(msg, km.goalDown):
		d.DailyGoal = max(minGoal, d.DailyGoal-1)
	case key.Matches(msg, km.volumeUp):
		d.SoundVolume = roundVolume(min(1, d.SoundVolume+volumeStep))
	case key.Matches(msg, km.volumeDown):
		d.SoundVolume = roundVolume(max(0, d.SoundVolume-volumeStep))
	case key.Matches(msg, km.sound):
		d.SoundEnabled = !d.SoundEnabled
	case key.Matches(msg, km.notifications):
		d.NotificationsEnabled = !d.NotificationsEnabled
	case key.Matches(msg, km.autoBreaks):
		d.AutoStartBreaks = !d.AutoStartBreaks
	case key.Matches(msg, km.autoWork):
		d.AutoStartWork = !d.AutoStartWork
	}

	t.draft = &d

	return t, nil
}

// roundVolume avoids float drift after repeated steps.
func roundVolume(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	logging.Dump(t.opts.Logger, "timer message", msg)

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case clearMessageMsg:
		if msg.id == t.msgID {
			t.message = ""
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		t.help.Width = msg.Width

		return t, nil
	}

	return t, nil
}

// Settings returns the settings the timer currently runs with.
func (t *Timer) Settings() config.Settings {
	return t.sess.Settings()
}
