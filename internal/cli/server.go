// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apodapi/internal/api/handlers"
	"apodapi/internal/audit"
	"apodapi/internal/config"
	"apodapi/internal/httpserver"
	"apodapi/internal/i18n"
	"apodapi/internal/logging"
	"apodapi/internal/repository"
	"apodapi/internal/services"
	"apodapi/internal/services/auth"
	"apodapi/internal/upstream"
)

// openRepository connects to the configured store and makes sure its schema
// is current.
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

// newPictureService wires the store, the NASA client and the auditor.
func newPictureService(c *config.Config, repo *repository.Repository) services.PictureService {
	client := upstream.NewNASAClient(c.Upstream, c.UpstreamTimeout)
	auditor := audit.NewLoggerAuditor(c.Logging.AuditEnabled)
	return services.NewPictureService(repo, client, auditor)
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime, cfg.Database.Driver)
	pictureService := newPictureService(cfg, repo)

	verifier, err := auth.NewKeyVerifier(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to set up API key verification: %w", err)
	}
	if cfg.Auth.Mode == config.AuthModeStatic && cfg.Auth.APIKey == "" {
		logging.Log.Warn("auth.api_key is empty, every ingest request will be rejected")
	}
	authMiddleware := auth.NewMiddleware(verifier)
	limiter := httpserver.NewRateLimiter(cfg.RateLimit.IngestLimit, cfg.IngestWindow)
	translator, err := i18n.NewTranslator()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	h := handlers.NewHandlers(infoService, pictureService, cfg)
	r := httpserver.SetupRouter(h, authMiddleware, limiter, translator, cfg.Server.CORSOrigins)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (store: %s, auth: %s)", serverAddr, cfg.Database.Driver, cfg.Auth.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
