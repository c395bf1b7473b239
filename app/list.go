package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/exercise"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/internal/ui"
)

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}

// printStats prints the statistics document. A streak that was not
// continued yesterday or today is shown as broken.
func printStats(
	w io.Writer,
	doc models.StatsDoc,
	settings config.Settings,
	today timeutil.Date,
) error {
	s := doc.StreakOrZero()

	current := ui.Green(days(s.Current))
	if !s.Alive(today) {
		current = ui.Red(days(0))
	}

	lastActive := "never"
	if s.LastDate != nil {
		lastActive = s.LastDate.String()
	}

	rows := [][]string{
		{"Work sessions", ui.Highlight(strconv.Itoa(doc.Stats.Sessions))},
		{"Exercise breaks", ui.Highlight(strconv.Itoa(doc.Stats.Exercises))},
		{"Current streak", current},
		{"Longest streak", days(s.Longest)},
		{"Last active", lastActive},
		{"Daily goal", fmt.Sprintf("%d sessions", settings.DailyGoal)},
	}

	return ui.PrintPairs(rows, w)
}

// statsAction prints the saved statistics.
func statsAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	adapter, err := e.openStore()
	if err != nil {
		return err
	}

	doc, _ := adapter.LoadStats()

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}

		pterm.Fprintln(config.Stdout, string(b))

		return nil
	}

	stored, found := adapter.LoadSettings()

	return printStats(
		config.Stdout,
		doc,
		e.cfg.EffectiveSettings(stored, found),
		timeutil.Today(),
	)
}

// printProfiles prints every profile with its durations. The custom row
// shows the user's custom times and the active profile is marked.
func printProfiles(w io.Writer, settings config.Settings) error {
	table := [][]string{
		{"", "PROFILE", "WORK", "QUICK BREAK", "EXERCISE BREAK", "LONG BREAK"},
	}

	for _, name := range config.ProfileNames() {
		s := settings.WithProfile(name)
		d := s.Durations()

		marker := ""
		if name == settings.Profile {
			marker = ui.Green("*")
		}

		table = append(table, []string{
			marker,
			s.ProfileLabel() + " (" + name + ")",
			timeutil.Minutes(d.WorkTime),
			timeutil.Minutes(d.MicroBreak),
			timeutil.Minutes(d.ExerciseBreak),
			timeutil.Minutes(d.LongBreak),
		})
	}

	return ui.PrintTable(table, w)
}

func profilesAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	adapter, err := e.openStore()
	if err != nil {
		return err
	}

	stored, found := adapter.LoadSettings()

	return printProfiles(config.Stdout, e.cfg.EffectiveSettings(stored, found))
}

// printExercises prints the catalog entries of the given categories.
func printExercises(
	w io.Writer,
	catalog *exercise.Catalog,
	categories []exercise.Category,
) error {
	for _, cat := range categories {
		pterm.Fprintln(w, ui.Highlight(strings.ToUpper(string(cat))))

		for _, ex := range catalog.List(cat) {
			pterm.Fprintln(w, "  "+ui.Green(ex.Title))

			for _, line := range strings.Split(strings.TrimSpace(ex.Description), "\n") {
				pterm.Fprintln(w, "    "+line)
			}
		}

		pterm.Fprintln(w)
	}

	return nil
}

// exercisesAction lists the exercise catalog, optionally for one category.
func exercisesAction(ctx *cli.Context) error {
	categories := exercise.Categories

	if ctx.Args().Present() {
		cat, err := exercise.ParseCategory(ctx.Args().First())
		if err != nil {
			return err
		}

		categories = []exercise.Category{cat}
	}

	return printExercises(config.Stdout, exercise.Default(), categories)
}
