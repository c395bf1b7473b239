package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/logging"
	"github.com/hvila/hvila/internal/notify"
	"github.com/hvila/hvila/internal/pathutil"
	"github.com/hvila/hvila/internal/static"
	"github.com/hvila/hvila/internal/ui"
	"github.com/hvila/hvila/store"
)

// env holds what every command needs: the configuration, the log file and,
// once opened, the store.
type env struct {
	cfg    *config.Config
	logger *logging.Logger
	db     *store.Client
}

// loadEnv reads the configuration and installs the file logger as the
// default slog logger. The first-run prompt is only shown when prompt is
// set.
func loadEnv(ctx *cli.Context, prompt bool) (*env, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{
		config.WithPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.StatusFilePath(),
			pathutil.LogFilePath(),
		),
	}

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.System.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.System.LogPath, level)
	slog.SetDefault(logger.Logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	return &env{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// openStore opens the database. Only one hvila process may hold it.
func (e *env) openStore() (*store.Adapter, error) {
	if e.db == nil {
		db, err := store.NewClient(e.cfg.System.DBPath)
		if err != nil {
			return nil, err
		}

		e.db = db
	}

	return store.NewAdapter(e.db, e.logger.Logger), nil
}

func (e *env) close() {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			e.logger.Warn("closing database failed", slog.Any("error", err))
		}
	}

	_ = e.logger.Close()
}

// sinkFor returns a function that builds the notification sink for a set
// of settings. The bell and the session command are shared by every sink.
func (e *env) sinkFor(ctx context.Context) (func(config.Settings) notify.Sink, error) {
	dataDir := filepath.Dir(e.cfg.System.DBPath)

	if err := static.Install(dataDir); err != nil {
		e.logger.Warn("installing static files failed", slog.Any("error", err))
	}

	cmd, err := notify.NewCommand(ctx, e.cfg.System.SessionCmd)
	if err != nil {
		return nil, err
	}

	desktop := notify.NewDesktop(
		e.cfg.Settings,
		static.IconPath(dataDir),
		&notify.Bell{},
	)

	return func(s config.Settings) notify.Sink {
		sinks := notify.Multi{desktop.WithSettings(s)}

		if cmd != nil {
			sinks = append(sinks, cmd)
		}

		return sinks
	}, nil
}

// newRand returns a generator for the given seed. Zero means a random
// seed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewPCG(seed, seed))
}
