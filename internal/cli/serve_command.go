// filepath: internal/cli/serve_command.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payinfo/internal/api"
	"payinfo/internal/api/handlers"
	"payinfo/internal/audit"
	"payinfo/internal/config"
	"payinfo/internal/housekeeping"
	"payinfo/internal/logging"
	"payinfo/internal/repository"
	"payinfo/internal/services"
	"payinfo/internal/services/auth"

	"github.com/spf13/cobra"
)

// shutdownTimeout is how long in-flight requests get to finish on shutdown.
const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
	registerServeFlags(serveCmd)
	return serveCmd
}

// registerServeFlags defines the serve flags. Unset flags never override the
// config file or the environment.
func registerServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "Interface the HTTP server binds to. (Env: PAYINFO_SERVER_HOST)")
	cmd.Flags().Int("port", 0, "Port for the HTTP server. (Env: PAYINFO_SERVER_PORT)")
	cmd.Flags().String("db-path", "", "Path to the SQLite database file. (Env: PAYINFO_DATABASE_PATH)")
	cmd.Flags().Bool("audit-enabled", false, "Enable audit logging of write operations. (Env: PAYINFO_LOGGING_AUDIT_ENABLED=true)")
	cmd.Flags().String("cache-ttl", "", "Lifetime of cached lookups, e.g. '5m'. (Env: PAYINFO_CACHE_TTL)")
	cmd.Flags().String("housekeeping-interval", "", "How often expired payment infos are purged. (Env: PAYINFO_HOUSEKEEPING_INTERVAL)")
	cmd.Flags().String("retention", "", "How long stored payment infos stay valid, '0' keeps them forever. (Env: PAYINFO_HOUSEKEEPING_RETENTION)")
	cmd.Flags().String("jwt-secret", "", "Secret key for signing bearer tokens. (Env: PAYINFO_JWT_SECRET)")
}

// ensureJWTSecret generates a secret when none is configured and persists it to
// the config file. Only the secret is added to the file.
func ensureJWTSecret(c *config.Config, path string) error {
	if c.JWT.Secret != "" {
		return nil
	}

	logging.Log.Info("Generating new random JWT secret...")
	secret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	c.JWT.Secret = secret
	if err := config.SaveJWTSecret(path, secret); err != nil {
		logging.Log.Warnf("Failed to save new JWT secret to %s: %v", path, err)
	} else {
		logging.Log.Infof("New JWT secret saved to %s.", path)
	}
	return nil
}

// openRepository connects to the database and makes sure the schema is current.
func openRepository(c *config.Config) (*repository.Repository, error) {
	repo, err := repository.NewRepository(c)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		repo.Close()
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return nil, err
	}

	if err := repo.ValidateSchema(); err != nil {
		repo.Close()
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return nil, err
	}
	return repo, nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	if err := ensureJWTSecret(cfg, cfgFile); err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Service Initialization
	paymentInfoService := services.NewPaymentInfoService(repo, cfg.Retention)
	infoService := services.NewInfoService(Version, StartTime, repo)
	housekeepingService := housekeeping.NewService(repo, cfg.HousekeepingInterval)
	tokenService := auth.NewTokenService(cfg.JWT.Secret)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(tokenService)

	housekeepingService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		infoService,
		paymentInfoService,
		housekeepingService,
		loggerAuditor,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server starting on %s (retention: %s)", serverAddr, retentionLabel(cfg.Retention))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Block until a signal is received or the listener fails
	select {
	case <-stop:
	case err := <-serverErr:
		housekeepingService.Stop()
		return fmt.Errorf("server failed to start: %w", err)
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop background services
	housekeepingService.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}

func retentionLabel(d time.Duration) string {
	if d <= 0 {
		return "forever"
	}
	return d.String()
}
