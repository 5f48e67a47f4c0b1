package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/desertwitch/bomscan/internal/configuration"
	"github.com/desertwitch/bomscan/internal/filesystem"
	"github.com/desertwitch/bomscan/internal/queue"
	"github.com/desertwitch/bomscan/internal/reporting"
	"github.com/desertwitch/bomscan/internal/scanner"
	"github.com/desertwitch/bomscan/internal/schema"
	"github.com/desertwitch/bomscan/internal/ui"
	"github.com/lmittmann/tint"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	rootPath    = flag.String("root", "", "the directory to scan (positional argument wins)")
	configFile  = flag.String("config", "bomscan.env", "path to the configuration file")
	uiEnabled   = flag.Bool("ui", false, "enable the UI")
	sortOutput  = flag.Bool("sort", false, "sort the reported paths before output")
	fingerprint = flag.Bool("fingerprint", false, "content-hash matched files")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

func newTerminalHandler() slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})
}

func setupLogging(slogManager *SlogManager) {
	slogManager.AddHandler("terminal", newTerminalHandler())
	slog.SetDefault(slog.New(slogManager))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()

	sigChan3 := make(chan os.Signal, 1)
	signal.Notify(sigChan3, syscall.SIGUSR2)
	go func() {
		for range sigChan3 {
			runtime.GC()
		}
	}()
}

// establishConfiguration merges the configuration file with any explicitly
// set command-line flags; flags win, a positional root argument wins over all.
func establishConfiguration(configHandler *configuration.Handler) (*configuration.AppConfiguration, error) {
	config, err := configHandler.EstablishConfiguration(*configFile)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			config.RootPath = *rootPath
		case "ui":
			config.UIEnabled = *uiEnabled
		case "sort":
			config.SortOutput = *sortOutput
		case "fingerprint":
			config.Fingerprint = *fingerprint
		}
	})

	if arg := flag.Arg(0); arg != "" {
		config.RootPath = arg
	}

	if config.RootPath == "" {
		return nil, ErrNoRootPath
	}

	if config.UIEnabled {
		// The UI owns the terminal while scanning; buffer the report until exit.
		config.SortOutput = true
	}

	return config, nil
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		slog.Info("Waiting for UI...")
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
				break
			}
		}
	}

	if err := app.Launch(ctx); err != nil {
		slog.Error("Scan failure.",
			"err", err,
		)

		ExitCode = 1
	}
}

func startUI(ctx context.Context, cancel context.CancelFunc, wg *sync.WaitGroup, app *App, slogManager *SlogManager) {
	defer wg.Done()

	if app.uiHandler != nil {
		slogManager.SwapHandler("terminal", "ui", tint.NewHandler(app.uiHandler.LogWriter, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))

		defer slogManager.SwapHandler("ui", "terminal", newTerminalHandler())

		if err := app.LaunchUI(); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		}
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()

	slogManager := NewSlogManager()
	setupLogging(slogManager)
	setupSignalHandlers(cancel)

	memObserver := newMemoryObserver(ctx)
	defer memObserver.Stop()

	cpuProfiler := newCPUProfiler(ctx, cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := newAllocProfiler(ctx, memprofile)
	defer allocProfiler.Stop()

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	configHandler := configuration.NewHandler(configProvider)

	config, err := establishConfiguration(configHandler)
	if err != nil {
		slog.Error("Failed to establish the configuration.",
			"err", err,
		)
		ExitCode = 1

		return
	}

	fsHandler := filesystem.NewHandler(&filesystem.FileWalker{}, osProvider)
	scanHandler := scanner.NewHandler(osProvider, unixProvider, config.Fingerprint)
	scanManager := queue.NewScanManager()
	reportHandler := reporting.NewHandler(os.Stdout, config.SortOutput)

	var uiHandler *ui.Handler
	if config.UIEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, scanManager)
	}

	var wg sync.WaitGroup
	app := NewApp(config, fsHandler, scanHandler, scanManager, reportHandler, uiHandler)

	wg.Add(1)
	go startUI(ctx, cancel, &wg, app, slogManager)

	wg.Add(1)
	go startApp(ctx, &wg, app)

	wg.Wait()
}
