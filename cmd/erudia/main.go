package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli/formatter"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/db"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/repository"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := rpc.LoadConfig()

	// Determine DB path: env var or default ~/.erudia/erudia.db
	dbPath := os.Getenv("ERUDIA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".erudia", "erudia.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	uow := db.NewSQLiteUnitOfWork(database)

	var callObserver rpc.Observer = rpc.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		callObserver = rpc.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	client := rpc.NewHTTPClient(cfg, callObserver)

	// Wire repositories
	activityRepo := repository.NewRESTActivityRepo(client)
	gradeRepo := repository.NewRESTGradeRepo(client)
	groupRepo := repository.NewRESTAchievementGroupRepo(client)
	rosterRepo := repository.NewRESTRosterRepo(client)

	b := bus.New()
	app := &cli.App{
		Activities: service.NewActivityService(activityRepo, gradeRepo, cfg.Fanout, useCaseObserver),
		Scores:     service.NewScoreService(gradeRepo, groupRepo, uow, cfg.Fanout, useCaseObserver),
		Scheme:     service.NewSchemeService(groupRepo, useCaseObserver),
		Roster:     service.NewRosterService(rosterRepo, b, useCaseObserver),
		Bus:        b,
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
