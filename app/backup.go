package app

import (
	"bytes"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/backup"
	"github.com/hvila/hvila/internal/osutil"
	"github.com/hvila/hvila/internal/pathutil"
	"github.com/hvila/hvila/internal/timeutil"
	"github.com/hvila/hvila/store"
)

// exportFile writes the backup bundle of db to path. An empty path uses
// the dated default file name.
func exportFile(db store.DB, path string, now time.Time) (string, error) {
	if path == "" {
		path = pathutil.BackupFileName(timeutil.DateOf(now).String())
	}

	bundle, err := backup.Export(db, now)
	if err != nil {
		return path, err
	}

	var buf bytes.Buffer

	if err := backup.Write(&buf, bundle); err != nil {
		return path, err
	}

	return path, os.WriteFile(path, buf.Bytes(), osutil.FilePermission)
}

// importFile restores the documents in the bundle at path. Malformed files
// are reported as such and leave the database untouched.
func importFile(db store.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = backup.Import(db, f)
	if err != nil && backup.Rejected(err) {
		return errInvalidFileFormat.Wrap(err)
	}

	return err
}

func exportAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	if _, err = e.openStore(); err != nil {
		return err
	}

	path, err := exportFile(e.db, ctx.Args().First(), time.Now())
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Data exported to %s", path)

	return nil
}

func importAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errMissingImportFile
	}

	e, err := loadEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	if _, err = e.openStore(); err != nil {
		return err
	}

	if err := importFile(e.db, ctx.Args().First()); err != nil {
		return err
	}

	pterm.Success.Println("Data imported successfully!")

	return nil
}
