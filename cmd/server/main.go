package main

import (
	"context"   // Startup and shutdown deadlines
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"reciplette/internal/api"        // Route handlers
	"reciplette/internal/config"     // Configuration
	"reciplette/internal/db"         // Connection pool
	"reciplette/internal/middleware" // Metrics
	"reciplette/internal/store"      // Persistence gateway
	"reciplette/internal/upload"     // Image storage

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown LOG_LEVEL %q, keeping %s", cfg.LogLevel, logrus.GetLevel())
	}

	// Connect to the database
	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logrus.Fatalf("failed to access DB pool: %v", err)
	}

	images, err := newImageStore(cfg)
	if err != nil {
		logrus.Fatalf("failed to set up image store: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := api.NewRouter(api.Deps{
		Store:   store.New(gormDB),            // Persistence gateway
		Images:  images,                       // Uploaded images
		Metrics: middleware.NewMetrics(sqlDB), // Prometheus metrics
		Logger:  logrus.StandardLogger(),      // Access log
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server running on %s", cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		logrus.Errorf("closing DB: %v", err)
	}
}

// newImageStore picks the upload backend named by IMAGE_STORE
func newImageStore(cfg *config.Config) (upload.ImageStore, error) {
	switch cfg.ImageStore {
	case config.ImageStoreMinio:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := upload.NewMinioStore(ctx, upload.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
		})
		if err != nil {
			return nil, err
		}
		logrus.WithField("bucket", cfg.MinioBucket).Info("Storing images in MinIO")
		return store, nil
	default:
		store, err := upload.NewDiskStore(cfg.ImageDir)
		if err != nil {
			return nil, err
		}
		logrus.WithField("dir", store.Dir()).Info("Storing images on disk")
		return store, nil
	}
}
