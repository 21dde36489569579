package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Settc/liftscript/internal/config"
	"github.com/Settc/liftscript/internal/files"
	"github.com/Settc/liftscript/internal/logging"
	"github.com/Settc/liftscript/internal/share"
	"github.com/Settc/liftscript/internal/store"
	"github.com/Settc/liftscript/internal/workout"
)

const onboardingSetting = "seen-onboarding"

// app carries what the commands share. The root command fills cfg and log
// before any subcommand runs; the store is opened on first use.
type app struct {
	manager *files.Manager
	cfg     *config.Config
	log     *slog.Logger

	db      *store.DB
	closers []io.Closer
}

func newApp(manager *files.Manager) *app {
	return &app{
		manager: manager,
		cfg:     config.Default(),
		log:     logging.NewNop(),
	}
}

// setup loads configuration and opens the log file.
func (a *app) setup(configPath string, debug bool) error {
	if configPath == "" {
		configPath = a.manager.ConfigPath()
	}
	configPath, err := files.ExpandHome(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if debug || os.Getenv("LIFTSCRIPT_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	logger, closer, err := logging.OpenFile(a.manager.LogPath(), level)
	if err != nil {
		return err
	}
	a.log = logger
	a.closers = append(a.closers, closer)
	return nil
}

func (a *app) store(ctx context.Context) (*store.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := store.Open(ctx, a.manager.DatabasePath(), a.log)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db)
	return db, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close", "error", err)
		}
	}
	a.closers = nil
	a.db = nil
}

// currentText returns the workout being edited. On first use it seeds the
// onboarding sample once.
func (a *app) currentText(ctx context.Context) (string, error) {
	if a.manager.HasText() {
		return a.manager.LoadText()
	}

	db, err := a.store(ctx)
	if err != nil {
		return "", err
	}
	_, seen, err := db.Setting(ctx, onboardingSetting)
	if err != nil {
		return "", err
	}
	if seen {
		return "", nil
	}

	if err := a.manager.SaveText(workout.OnboardingText); err != nil {
		return "", err
	}
	if err := db.SetSetting(ctx, onboardingSetting, "1"); err != nil {
		return "", err
	}
	a.log.Info("seeded onboarding workout")
	return workout.OnboardingText, nil
}

// exchange returns the remote share client when a share URL is configured,
// else a service over the local database.
func (a *app) exchange(ctx context.Context) (share.Exchange, error) {
	if a.cfg.Share.URL != "" {
		return share.NewClient(a.cfg.Share.URL), nil
	}
	db, err := a.store(ctx)
	if err != nil {
		return nil, err
	}
	return share.NewService(db, a.log), nil
}

func (a *app) units() string {
	if a.cfg == nil || a.cfg.Units == "" {
		return "lbs"
	}
	return a.cfg.Units
}

func requireText(text string) error {
	if len(workout.Parse(text).Exercises) == 0 {
		return fmt.Errorf("current workout is empty; run \"liftscript edit\" to add exercises")
	}
	return nil
}
