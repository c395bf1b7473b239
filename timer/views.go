package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/timeutil"
)

func (t *Timer) headerView() string {
	st := t.sess.State()

	var s strings.Builder

	s.WriteString(t.style.Phase[st.Phase].Render(st.Phase.Label()))

	if !st.Running {
		s.WriteString(t.style.Secondary.Render("[Paused]"))
	} else {
		timeFormat := "03:04 PM"
		if t.opts.TwentyFourHour {
			timeFormat = "15:04"
		}

		end := t.sess.Status().EndTime
		s.WriteString(t.style.Hint.Render("until " + end.Format(timeFormat)))
	}

	s.WriteString(t.style.Hint.Render("· " + t.sess.Settings().ProfileLabel()))

	return s.String()
}

func (t *Timer) clockView() string {
	st := t.sess.State()

	clock := timeutil.Clock(st.CurrentTime)

	if st.CurrentTime > 0 && st.CurrentTime <= warningSeconds {
		return t.style.Warning.Render(clock)
	}

	return t.style.Main.Render(clock)
}

func (t *Timer) exerciseView() string {
	if t.exercise == nil || !t.sess.State().Phase.IsBreak() {
		return ""
	}

	body := t.style.CardTitle.Render(t.exercise.Title) + "\n" +
		t.exercise.Description

	return "\n\n" + t.style.Card.Render(body)
}

func (t *Timer) statsView() string {
	st := t.sess.State()
	today := t.sess.Today()
	goal := t.sess.Settings().DailyGoal

	days := "days"
	if st.Streak.Current == 1 {
		days = "day"
	}

	line := fmt.Sprintf(
		"Sessions %d · Exercises %d · Streak %d %s · Goal %d/%d (%d%%)",
		st.Stats.Sessions,
		st.Stats.Exercises,
		st.Streak.Current,
		days,
		phase.TodaySessions(st, today),
		goal,
		int(phase.GoalProgress(st, today, goal)*100),
	)

	return t.style.Hint.Render(line)
}

func (t *Timer) helpView() string {
	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
		defaultKeymap.settings,
		defaultKeymap.quit,
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func (t *Timer) settingsView() string {
	d := *t.draft
	dur := d.Durations()

	rows := [][2]string{
		{"Profile", fmt.Sprintf(
			"‹ %s ›  work %s · micro %s · exercise %s · long %s",
			d.ProfileLabel(),
			timeutil.Minutes(dur.WorkTime),
			timeutil.Minutes(dur.MicroBreak),
			timeutil.Minutes(dur.ExerciseBreak),
			timeutil.Minutes(dur.LongBreak),
		)},
		{"Daily goal", fmt.Sprintf("%d sessions", d.DailyGoal)},
		{"Sound", fmt.Sprintf(
			"%s (volume %d%%)",
			onOff(d.SoundEnabled),
			int(d.SoundVolume*100+0.5),
		)},
		{"Notifications", onOff(d.NotificationsEnabled)},
		{"Auto-start", fmt.Sprintf(
			"breaks %s · work %s",
			onOff(d.AutoStartBreaks),
			onOff(d.AutoStartWork),
		)},
	}

	var s strings.Builder

	s.WriteString(t.style.Main.Render("Settings"))
	s.WriteString("\n")

	for _, r := range rows {
		s.WriteString(fmt.Sprintf("\n%-14s %s", r[0], r[1]))
	}

	km := defaultSettingsKeymap

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		km.nextProfile,
		km.goalUp,
		km.volumeUp,
		km.sound,
		km.notifications,
		km.autoBreaks,
		km.autoWork,
		km.save,
		km.close,
	}))

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.clockView())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(phase.Elapsed(t.sess.State())))
	s.WriteString(t.exerciseView())
	s.WriteString("\n\n")
	s.WriteString(t.statsView())

	if t.message != "" {
		s.WriteString("\n\n" + t.style.Message.Render(t.message))
	}

	s.WriteString("\n\n" + t.helpView())

	return s.String()
}

func (t *Timer) View() string {
	if t.draft != nil {
		return t.style.Base.Render(t.settingsView())
	}

	return t.style.Base.Render(t.timerView())
}
