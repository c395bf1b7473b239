// Package app wires the hvila command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the hvila app instance.
func Get() *cli.App {
	hvilaApp := &cli.App{
		Name: "hvila",
		Usage: `
		Hvila is a Pomodoro timer for the command-line that breaks up long work 
		sessions with neck and shoulder exercises. Every second work session 
		ends with an exercise break and every fourth with a long break.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Print your session statistics, streak, and daily goal",
				Flags:  []cli.Flag{jsonFlag},
				Action: statsAction,
			},
			{
				Name: "settings",
				Usage: `
				Print the saved settings. When flags are given, the new settings 
				are validated and saved`,
				Flags:  settingsFlags(),
				Action: settingsAction,
			},
			{
				Name:   "profiles",
				Usage:  "List the available timer profiles",
				Action: profilesAction,
			},
			{
				Name:      "exercises",
				Usage:     "List the exercises shown during breaks",
				ArgsUsage: "[micro|exercise|long]",
				Action:    exercisesAction,
			},
			{
				Name:      "export",
				Usage:     "Export your settings and statistics to a backup file",
				ArgsUsage: "[file]",
				Action:    exportAction,
			},
			{
				Name:      "import",
				Usage:     "Restore settings and statistics from a backup file",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "reset-stats",
				Usage:  "Reset the session statistics and the day streak",
				Flags:  []cli.Flag{yesFlag},
				Action: resetStatsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
		},
		Flags: append(
			settingsFlags(),
			noSoundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			seedFlag,
			headlessFlag,
			noColorFlag,
		),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return hvilaApp
}
