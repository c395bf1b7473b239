package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/internal/session"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/store"
)

// resetStats zeroes the statistics and the streak. It requests for
// confirmation before proceeding unless confirmed is set.
func resetStats(
	db store.DB,
	doc models.StatsDoc,
	settings config.Settings,
	in io.Reader,
	out io.Writer,
	confirmed bool,
) error {
	if !confirmed {
		if err := printStats(out, doc, settings, timeutil.Today()); err != nil {
			return err
		}

		warning := pterm.Warning.Sprint(
			"The statistics above and your day streak will be reset permanently. Press ENTER to proceed",
		)

		fmt.Fprint(out, warning)

		reader := bufio.NewReader(in)

		if _, err := reader.ReadString('\n'); err != nil {
			return errResetAborted.Wrap(err)
		}
	}

	sess := session.New(settings, doc, session.Options{})

	return putJSON(db, store.KeyState, sess.ResetStats())
}

// resetStatsAction handles the reset-stats command.
func resetStatsAction(ctx *cli.Context) error {
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
	stored, found := adapter.LoadSettings()

	err = resetStats(
		e.db,
		doc,
		e.cfg.EffectiveSettings(stored, found),
		config.Stdin,
		config.Stdout,
		ctx.Bool("yes"),
	)
	if err != nil {
		return err
	}

	pterm.Success.Println("Statistics reset")

	return nil
}
