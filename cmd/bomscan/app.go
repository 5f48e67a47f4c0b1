package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/bomscan/internal/configuration"
	"github.com/desertwitch/bomscan/internal/filesystem"
	"github.com/desertwitch/bomscan/internal/queue"
	"github.com/desertwitch/bomscan/internal/reporting"
	"github.com/desertwitch/bomscan/internal/scanner"
	"github.com/desertwitch/bomscan/internal/schema"
	"github.com/desertwitch/bomscan/internal/ui"
	"github.com/desertwitch/bomscan/internal/validation"
)

type App struct {
	config        *configuration.AppConfiguration
	fsHandler     *filesystem.Handler
	scanHandler   *scanner.Handler
	scanManager   *queue.ScanManager
	reportHandler *reporting.Handler
	uiHandler     *ui.Handler
}

func NewApp(config *configuration.AppConfiguration,
	fsHandler *filesystem.Handler,
	scanHandler *scanner.Handler,
	scanManager *queue.ScanManager,
	reportHandler *reporting.Handler,
	uiHandler *ui.Handler,
) *App {
	return &App{
		config:        config,
		fsHandler:     fsHandler,
		scanHandler:   scanHandler,
		scanManager:   scanManager,
		reportHandler: reportHandler,
		uiHandler:     uiHandler,
	}
}

func (app *App) Launch(ctx context.Context) error {
	if err := app.Enumerate(ctx); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if err := app.Probe(ctx); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if err := app.Report(); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}

func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// Enumerate collects and validates all candidate files below the scan root,
// enqueueing them for probing.
func (app *App) Enumerate(ctx context.Context) error {
	candidates, err := app.fsHandler.Candidates(ctx, app.config.RootPath)
	if err != nil {
		return fmt.Errorf("failed to enumerate: %w", err)
	}

	candidates = validation.Candidates(candidates)
	app.scanManager.Enqueue(candidates...)

	slog.Info("Enumeration complete.",
		"root", app.config.RootPath,
		"candidates", len(candidates),
	)

	return nil
}

// Probe sequentially probes all enqueued candidates, reporting each result as
// it is produced. Per-file failures are contained by the prober; only a
// context cancellation aborts the run.
func (app *App) Probe(ctx context.Context) error {
	err := app.scanManager.Process(ctx, func(c *schema.Candidate) int {
		result := app.scanHandler.Probe(ctx, c)

		if err := app.reportHandler.Report(result); err != nil {
			slog.Warn("Failed to report probe result.",
				"err", err,
				"path", c.RelPath,
			)
		}

		if result.Skipped || !result.HasBOM {
			return queue.DecisionSkipped
		}

		if app.uiHandler != nil {
			app.uiHandler.ReportMatch(c.RelPath)
		}

		if result.Fingerprint != "" {
			slog.Info("Matched file fingerprinted.",
				"path", c.RelPath,
				"blake3", result.Fingerprint,
			)
		}

		return queue.DecisionSuccess
	})
	if err != nil {
		return fmt.Errorf("failed to probe: %w", err)
	}

	return nil
}

// Report flushes any buffered (sorted) output and logs the scan summary.
func (app *App) Report() error {
	if err := app.reportHandler.Flush(); err != nil {
		return fmt.Errorf("failed to report: %w", err)
	}

	app.reportHandler.Summary()

	return nil
}
