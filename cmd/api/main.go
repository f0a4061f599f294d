package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/config"
	dbpkg "github.com/Hyken1/OdontoClinic/internal/db"
	"github.com/Hyken1/OdontoClinic/internal/logging"
	"github.com/Hyken1/OdontoClinic/internal/middleware"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/routes"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
	"github.com/Hyken1/OdontoClinic/internal/timezone"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odonto",
		Short: "Front-office API for the dental clinic spreadsheet",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.LogLevel, pretty)
			return runServer(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "human readable logs")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	logger.Info().Msg("--- INICIANDO SISTEMA ---")

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("store unavailable")
		return err
	}

	locker, closeLocker, err := openLocker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLocker()

	clock := timezone.New(cfg.ClinicTimezone)
	dispatcher, err := openAudit(cfg, logger, clock)
	if err != nil {
		return err
	}
	defer dispatcher.Close()

	gw := sheets.NewGateway(store, locker)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, gw, dispatcher, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (sheets.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn().Msg("memory store: data is lost on restart")
		return records.NewMemoryStore(), nil
	case config.DriverGoogle:
		creds, err := cfg.LoadCredentials()
		if err != nil {
			return nil, err
		}
		logger.Info().Str("source", creds.Source).Msg("credentials loaded")
		return sheets.NewGoogleStore(ctx, cfg, creds)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func openLocker(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (sheets.Locker, func(), error) {
	if cfg.RedisURL == "" {
		return sheets.NewLocalLocker(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info().Str("addr", opts.Addr).Msg("sheet writes serialized through redis")
	return sheets.NewRedisLocker(client, cfg.LockTTL), func() { _ = client.Close() }, nil
}

func openAudit(cfg *config.Config, logger zerolog.Logger, clock *timezone.Clock) (*audit.Dispatcher, error) {
	auditLog := logger.With().Str("component", "audit").Logger()

	if cfg.DatabaseURL == "" {
		return audit.NewDispatcher(audit.NewLogSink(auditLog), auditLog, clock.Now), nil
	}

	db, err := dbpkg.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return audit.NewDispatcher(audit.New(db), auditLog, clock.Now), nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every sheet and header column exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.LogLevel, true)

			store, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			problems := checkSheets(cmd.Context(), sheets.NewGateway(store, nil))
			for _, p := range problems {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) found", len(problems))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all sheets ok")
			return nil
		},
	}
}

// checkSheets reports sheets that cannot be resolved and header columns the
// service expects but a sheet lacks. Headers are read from the first data
// row, so empty sheets are only checked for existence.
func checkSheets(ctx context.Context, gw *sheets.Gateway) []string {
	var problems []string
	for _, name := range records.SheetNames {
		rows, err := gw.ReadAll(ctx, name)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if len(rows) == 0 {
			continue
		}

		var missing []string
		for _, col := range records.Headers[name] {
			if !rows[0].Has(col) {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s: missing columns %s", name, strings.Join(missing, ", ")))
		}
	}
	return problems
}
