package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/fuelplan/internal/cli"
	"github.com/alexanderramin/fuelplan/internal/config"
	"github.com/alexanderramin/fuelplan/internal/nutrition"
	"github.com/alexanderramin/fuelplan/internal/service"
	"github.com/alexanderramin/fuelplan/internal/timeline"
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
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	configPath := os.Getenv("FUELPLAN_CONFIG")
	if configPath == "" {
		configPath = "fuelplan.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	var logger *slog.Logger
	if cfg.Log.Enabled {
		observer = service.NewLogUseCaseObserver(os.Stderr)
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	planner := service.NewPlannerService(
		nutrition.NewCalculator(cfg.CalculatorOptions()),
		timeline.NewAssembler(cfg.SchedulerOptions()),
		cfg.Planner.NamingTolerance,
		observer,
	)

	app := &cli.App{
		Planner:       planner,
		Config:        cfg,
		Logger:        logger,
		DefaultFormat: cli.FormatJSON,
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		app.DefaultFormat = cli.FormatTable
	}

	return cli.NewRootCmd(app).Execute()
}
