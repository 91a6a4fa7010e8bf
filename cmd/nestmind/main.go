package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/maveryjr/nestmind/pkg/analyzer"
	"github.com/maveryjr/nestmind/pkg/config"
	"github.com/maveryjr/nestmind/pkg/health"
	"github.com/maveryjr/nestmind/pkg/notify"
	"github.com/maveryjr/nestmind/pkg/repository"
	"github.com/maveryjr/nestmind/pkg/scheduler"
	"github.com/maveryjr/nestmind/pkg/suggest"
	"github.com/maveryjr/nestmind/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting nestmind version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the components together and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create repositories: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	analysisCfg := cfg.GetAnalysisConfig()
	patterns := analyzer.New(repos.Item, repos.Activity, analyzer.Config{
		ActivityWindowDays: analysisCfg.ActivityWindowDays,
	})

	engine := suggest.New(patterns, repos.Item, repos.Activity, suggest.Config{
		MaxSuggestions: analysisCfg.MaxSuggestions,
	})

	healthCfg := cfg.GetHealthConfig()
	prober := health.NewHTTPChecker(healthCfg.CheckTimeout, healthCfg.UserAgent)
	providers := health.DefaultProviders(healthCfg.CheckTimeout, healthCfg.UserAgent)
	monitor := health.NewMonitor(repos.Item, repos.Health, prober, providers, health.Config{
		BatchSize:       healthCfg.BatchSize,
		BatchPause:      healthCfg.BatchPause,
		Stagger:         healthCfg.Stagger,
		RecheckInterval: healthCfg.RecheckInterval,
		DeadRecheck:     healthCfg.DeadRecheck,
		RecoveryGrace:   healthCfg.RecoveryGrace,
	})
	defer monitor.Stop()

	sched := scheduler.NewScheduler(monitor, engine, notify.NewLogNotifier(), scheduler.Config{
		HealthInterval: cfg.Schedule.HealthInterval,
		DigestInterval: cfg.Schedule.DigestInterval,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, engine, monitor, revision, opts.Debug)
	return srv.Run(ctx)
}

// loadConfig reads the config file, falling back to defaults when the default
// file is absent
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == "config.yml" {
		log.Printf("[INFO] no config file found, using defaults")
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
