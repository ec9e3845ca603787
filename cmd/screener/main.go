// FII Screener - quality screening for Brazilian real-estate funds.
//
// Usage:
//
//	screener analyze [--output ./output]
//	screener serve [--addr localhost:5001]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/fii-screener/internal/api"
	"github.com/ndewijer/fii-screener/internal/apperrors"
	"github.com/ndewijer/fii-screener/internal/config"
	"github.com/ndewijer/fii-screener/internal/database"
	"github.com/ndewijer/fii-screener/internal/model"
	"github.com/ndewijer/fii-screener/internal/report"
	"github.com/ndewijer/fii-screener/internal/repository"
	"github.com/ndewijer/fii-screener/internal/service"
	"github.com/ndewijer/fii-screener/internal/statusinvest"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "screener",
		Usage:   "Screens Brazilian FIIs against 20 quality criteria",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			analyzeCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Run one screening pass and export terminal, HTML, and CSV reports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Usage:   "Directory for HTML and CSV exports",
				EnvVars: []string{"OUTPUT_DIR"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, log, db, analysisService, err := setup(c)
			if err != nil {
				return err
			}
			defer db.Close()

			outputDir := cfg.Output.Dir
			if c.String("output") != "" {
				outputDir = c.String("output")
			}

			log.Info().Strs("tickers", cfg.Tickers).Msg("Collecting fund data")

			run, err := analysisService.Run(c.Context, cfg.Tickers)
			if err != nil {
				return err
			}

			fmt.Println(report.RenderMatrix(run))
			fmt.Println(report.RenderRanking(run))

			return exportReports(run, outputDir, log)
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Screen once, then serve results over HTTP (optionally re-screening on a cron schedule)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cron",
				Usage:   "Cron spec for scheduled re-analysis (empty disables)",
				EnvVars: []string{"ANALYSIS_CRON"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, log, db, analysisService, err := setup(c)
			if err != nil {
				return err
			}
			defer db.Close()

			store := service.NewResultStore()

			runAnalysis := func(ctx context.Context) {
				run, err := analysisService.Run(ctx, cfg.Tickers)
				if err != nil {
					log.Error().Err(err).Msg("Analysis run failed")
					return
				}
				store.Set(run)
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Initial run so the API has results to serve
			runAnalysis(ctx)

			cronSpec := cfg.Scheduler.CronSpec
			if c.String("cron") != "" {
				cronSpec = c.String("cron")
			}

			var scheduler *cron.Cron
			if cronSpec != "" {
				scheduler = cron.New()
				if _, err := scheduler.AddFunc(cronSpec, func() { runAnalysis(ctx) }); err != nil {
					return fmt.Errorf("invalid cron spec %q: %w", cronSpec, err)
				}
				scheduler.Start()
				log.Info().Str("spec", cronSpec).Msg("Scheduled re-analysis enabled")
			}

			server := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      api.NewRouter(db, store, cfg, log),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			})

			g.Go(func() error {
				<-ctx.Done()

				log.Info().Msg("Shutting down")
				if scheduler != nil {
					scheduler.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}

// setup loads configuration and wires the shared dependencies.
func setup(c *cli.Context) (*config.Config, zerolog.Logger, *sql.DB, *service.AnalysisService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	levelStr := cfg.LogLevel
	if c.String("log-level") != "" {
		levelStr = c.String("log-level")
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, zerolog.Logger{}, nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, zerolog.Logger{}, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, zerolog.Logger{}, nil, nil, err
	}

	refRepo := repository.NewReferenceRepository(db)
	client := statusinvest.NewClient(cfg.Scraper.BaseURL, cfg.Scraper.Timeout, log)
	analysisService := service.NewAnalysisService(refRepo, client, cfg.Scraper.Delay, log)

	return cfg, log, db, analysisService, nil
}

// exportReports writes the HTML and CSV exports for a completed run.
func exportReports(run model.AnalysisRun, outputDir string, log zerolog.Logger) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	date := run.GeneratedAt.Format("2006-01-02")

	htmlPath := filepath.Join(outputDir, fmt.Sprintf("fii_analysis_%s.html", date))
	if err := writeFile(htmlPath, func(f *os.File) error { return report.WriteHTML(f, run) }); err != nil {
		return err
	}
	log.Info().Str("path", htmlPath).Msg("HTML report written")

	csvPath := filepath.Join(outputDir, fmt.Sprintf("fii_raw_data_%s.csv", date))
	if err := writeFile(csvPath, func(f *os.File) error { return report.WriteCSV(f, run) }); err != nil {
		return err
	}
	log.Info().Str("path", csvPath).Msg("CSV export written")

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToExportReport, path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToExportReport, path, err)
	}
	return f.Close()
}
