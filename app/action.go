package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/osutil"
	"github.com/hvila/hvila/internal/pathutil"
	"github.com/hvila/hvila/internal/runner"
	"github.com/hvila/hvila/internal/session"
	"github.com/hvila/hvila/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envHvilaNoColor = "HVILA_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// defaultAction starts the interactive timer, or the headless runner when
// --headless is set.
func defaultAction(ctx *cli.Context) error {
	headless := ctx.Bool("headless")

	e, err := loadEnv(ctx, !headless)
	if err != nil {
		return err
	}

	defer e.close()

	adapter, err := e.openStore()
	if err != nil {
		return err
	}

	stored, found := adapter.LoadSettings()
	settings := e.cfg.EffectiveSettings(stored, found)
	doc, _ := adapter.LoadStats()

	sess := session.New(settings, doc, session.Options{
		Rand:   newRand(e.cfg.CLI.Seed),
		Logger: e.logger.Logger,
	})

	sinkFor, err := e.sinkFor(ctx.Context)
	if err != nil {
		return err
	}

	e.logger.Info(
		"starting hvila",
		slog.String("profile", settings.Profile),
		slog.Bool("headless", headless),
	)

	if headless {
		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		r := runner.New(sess, runner.Options{
			Store:      adapter,
			Sink:       sinkFor(settings),
			Logger:     e.logger.Logger,
			Out:        config.Stdout,
			StatusPath: e.cfg.System.StatusPath,
		})

		return r.Run(sigCtx, config.Stdin)
	}

	t := timer.New(sess, timer.Options{
		Store:          adapter,
		SinkFor:        sinkFor,
		Logger:         e.logger.Logger,
		StatusPath:     e.cfg.System.StatusPath,
		DarkTheme:      e.cfg.Display.DarkTheme,
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})

	_, err = tea.NewProgram(t).Run()

	return err
}

// statusAction handles the status command and prints the status of the
// running timer.
func statusAction(_ *cli.Context) error {
	return session.ReportStatus(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// editConfigAction handles the edit-config command which opens the hvila
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(runtime.GOOS),
	)

	cmd := exec.Command(editor, e.cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	if err := cmd.Run(); err != nil {
		return errEditorFailed.Fmt(editor).Wrap(err)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/hvila/hvila/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HVILA_NO_COLOR is set
	if _, exists := os.LookupEnv(envHvilaNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting hvila")

	return nil
}
