package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗  ██╗██╗   ██╗██╗██╗      █████╗
██║  ██║██║   ██║██║██║     ██╔══██╗
███████║██║   ██║██║██║     ███████║
██╔══██║╚██╗ ██╔╝██║██║     ██╔══██║
██║  ██║ ╚████╔╝ ██║███████╗██║  ██║
╚═╝  ╚═╝  ╚═══╝  ╚═╝╚══════╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Profile   string
	DailyGoal int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only runs when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.applyPromptOptions(opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Profile:   ProfileStandard,
		DailyGoal: defaultDailyGoal,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Hvila for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'hvila edit-config' to change any settings.`, " ").
		Render()

	profileOptions := make([]huh.Option[string], 0, len(profiles))

	for _, name := range ProfileNames() {
		if name == ProfileCustom {
			continue
		}

		p := profiles[name]
		label := fmt.Sprintf(
			"%s (%d min work, %d min long break)",
			p.Label,
			p.WorkTime/60,
			p.LongBreak/60,
		)

		profileOptions = append(
			profileOptions,
			huh.NewOption(label, name).Selected(name == ProfileStandard),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Timer profile").
				Options(profileOptions...).
				Value(&opts.Profile),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Daily goal").
				Options(
					huh.NewOption("4 sessions", 4),
					huh.NewOption("6 sessions", 6),
					huh.NewOption("8 sessions", 8).Selected(true),
					huh.NewOption("10 sessions", 10),
					huh.NewOption("12 sessions", 12),
				).
				Value(&opts.DailyGoal),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func (c *Config) applyPromptOptions(opts PromptOptions) {
	c.Settings = c.Settings.WithProfile(opts.Profile)
	c.Settings.DailyGoal = opts.DailyGoal
	c.prompted = true
}

// Prompted reports whether the first-run prompt was shown.
func (c *Config) Prompted() bool {
	return c.prompted
}
