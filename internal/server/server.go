// Package server boots the full application: config, log sinks, database,
// cache, storage, queue workers, the scheduler, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/voltkart/app/jobs"
	"github.com/shashiranjanraj/voltkart/app/routes"
	"github.com/shashiranjanraj/voltkart/config"
	"github.com/shashiranjanraj/voltkart/pkg/cache"
	"github.com/shashiranjanraj/voltkart/pkg/database"
	"github.com/shashiranjanraj/voltkart/pkg/logger"
	"github.com/shashiranjanraj/voltkart/pkg/metrics"
	"github.com/shashiranjanraj/voltkart/pkg/middleware"
	"github.com/shashiranjanraj/voltkart/pkg/queue"
	"github.com/shashiranjanraj/voltkart/pkg/reqid"
	"github.com/shashiranjanraj/voltkart/pkg/router"
	"github.com/shashiranjanraj/voltkart/pkg/schedule"
	"github.com/shashiranjanraj/voltkart/pkg/storage"
)

const (
	queueWorkers    = 5
	shutdownTimeout = 10 * time.Second
)

// Start boots every subsystem and blocks until SIGINT/SIGTERM, then shuts
// the HTTP server down gracefully.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	var mongoSink *logger.MongoHandler
	if uri := config.MongoLogURI(); uri != "" {
		sink, err := logger.NewMongoHandler(uri, "voltkart", "logs")
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			logger.Attach(sink)
			mongoSink = sink
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory queue and no cache", "error", err)
	}
	storage.Connect()

	queue.UseDB(database.DB)
	if cache.Available() {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	jobs.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.StartWorkers(ctx, queueWorkers)

	schedule.Daily().Name("low-stock-digest").Run(func() {
		if err := queue.Dispatch(&jobs.LowStockDigestJob{Threshold: jobs.DefaultLowStockThreshold}); err != nil {
			logger.Error("dispatch low stock digest", "error", err)
		}
	})
	schedule.Start(ctx)

	r := buildRouter()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("voltkart listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if mongoSink != nil {
		_ = mongoSink.Close()
	}
	return err
}

func buildRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r)

	r.Get("/metrics", "metrics", metrics.Handler())

	// Serve uploaded files directly when the local disk is in use. On S3
	// the image URLs already point at the bucket.
	if config.StorageDefault() == "local" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
		r.Get("/storage/*", "", fs.ServeHTTP)
	}

	return r
}
