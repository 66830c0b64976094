// Command campusgen generates a synthetic university tutoring dataset and
// writes it out as JSON files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	assembler "github.com/okian/campusgen/internal/app"
	"github.com/okian/campusgen/internal/config"
	"github.com/okian/campusgen/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	a := assembler.New(
		assembler.WithLogger(loggerInstance),
		assembler.WithConfig(cfg),
	)

	dataset, summary, err := a.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "generation failed", logger.Error(err))
		return 1
	}

	if err := dataset.WriteFiles(cfg.OutputDir); err != nil {
		loggerInstance.Error(ctx, "failed to write dataset", logger.Error(err))
		return 1
	}

	loggerInstance.Info(ctx, "dataset written",
		logger.String("runID", summary.RunID),
		logger.String("dir", cfg.OutputDir),
		logger.String("outcome", summary.Outcome),
		logger.Int("underEnrolled", len(summary.UnderEnrolled)),
		logger.Int("ratings", summary.Ratings),
		logger.Int("lowRatings", summary.LowRatings),
		logger.Int("rankedTeachers", summary.RankedTeachers),
		logger.Duration("duration", summary.Duration))

	return 0
}
