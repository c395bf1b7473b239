package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Run without the terminal interface. Commands are read from stdin (t: toggle, s: skip, r: reset, q: quit)",
	}

	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed the exercise picker for a reproducible order",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play the bell when a phase ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a phase ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when a phase ends. HVILA_PHASE holds the new phase",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the raw statistics document",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)

// settingsFlags returns fresh copies of the flags that override settings.
// They are shared by the root command and the settings command.
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Timer profile: standard, deepFocus, shortSprints, or custom",
		},
		&cli.StringFlag{
			Name:    "work",
			Aliases: []string{"w"},
			Usage:   "Work duration (e.g. 25m or 25). Switches to the custom profile",
		},
		&cli.StringFlag{
			Name:    "micro-break",
			Aliases: []string{"m"},
			Usage:   "Quick break duration. Switches to the custom profile",
		},
		&cli.StringFlag{
			Name:    "exercise-break",
			Aliases: []string{"e"},
			Usage:   "Exercise break duration. Switches to the custom profile",
		},
		&cli.StringFlag{
			Name:    "long-break",
			Aliases: []string{"l"},
			Usage:   "Long break duration. Switches to the custom profile",
		},
		&cli.IntFlag{
			Name:    "daily-goal",
			Aliases: []string{"g"},
			Usage:   "Number of work sessions to complete each day (1-20)",
		},
		&cli.Float64Flag{
			Name:  "volume",
			Usage: "Bell volume between 0 and 1",
		},
		&cli.BoolFlag{
			Name:  "sound",
			Usage: "Play the bell when a phase ends",
		},
		&cli.BoolFlag{
			Name:  "notifications",
			Usage: "Show a desktop notification when a phase ends",
		},
		&cli.BoolFlag{
			Name:  "auto-start-breaks",
			Usage: "Start breaks without waiting for input",
		},
		&cli.BoolFlag{
			Name:  "auto-start-work",
			Usage: "Start work sessions without waiting for input",
		},
	}
}
