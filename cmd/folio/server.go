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
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/folio/internal/backup"
	"github.com/thatcatcamp/folio/internal/config"
	"github.com/thatcatcamp/folio/internal/db"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/handlers"
	"github.com/thatcatcamp/folio/internal/logging"
	"github.com/thatcatcamp/folio/internal/middleware"
	"github.com/thatcatcamp/folio/internal/sessions"
	"github.com/thatcatcamp/folio/internal/themes"
	"golang.org/x/sync/errgroup"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Folio HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runServer(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// runServer serves HTTP until ctx is cancelled, alongside the session
// janitor, the rate limiter cleanup and the backup scheduler.
func runServer(ctx context.Context) error {
	logger := logging.Component("server")

	database := db.GetDB()
	stores := func(visitorID string) engine.Store {
		return db.NewPreferenceStore(database, visitorID)
	}
	sessionTTL := config.GetDuration("session.ttl")
	manager := sessions.NewManager(logging.Component("sessions"), stores, sessionTTL,
		sessions.WithEngineOptions(engine.WithDefaults(
			config.GetString("theme.default"),
			themes.ColorMode(config.GetString("theme.default_mode")),
		)),
	)

	limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.capacity"), config.GetDuration("ratelimit.interval"))
	secure := strings.HasPrefix(config.GetString("server.base_url"), "https://")

	if logging.IsProduction(config.GetString("app.env")) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// X-Forwarded-For is only honored from these peers; empty means RemoteAddr.
	if err := r.SetTrustedProxies(config.GetStringSlice("server.trusted_proxies")); err != nil {
		return fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logging.Component("http")))
	r.Use(middleware.SecurityHeadersMiddleware(secure))
	r.Use(middleware.VisitorMiddleware(config.GetString("session.cookie"), sessionTTL, secure))
	r.Use(middleware.CSRFMiddleware(secure))
	handlers.New(logging.Component("handlers"), manager).Register(r, middleware.RateLimitMiddleware(limiter))

	srv := &http.Server{
		Addr:              ":" + config.GetString("server.http_port"),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("addr", srv.Addr).
			Str("base_url", config.GetString("server.base_url")).
			Strs("themes", manager.Registry().Names()).
			Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve on %s: %w", srv.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration("server.shutdown_timeout"))
		defer cancel()

		logger.Info().Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return manager.Run(gctx, time.Minute)
	})

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	if interval := config.GetDuration("backups.interval"); interval > 0 {
		scheduler := backup.NewScheduler(newBackupManager(), database, logging.Component("backup"))
		scheduler.BackupInterval = interval
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	}

	return g.Wait()
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
