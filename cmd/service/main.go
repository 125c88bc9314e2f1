package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "zapshift/internal/app"
	"zapshift/internal/handlers/rest/checkout_session_post"
	"zapshift/internal/handlers/rest/healthcheck_head"
	"zapshift/internal/handlers/rest/parcel_delete"
	"zapshift/internal/handlers/rest/parcel_delivered_patch"
	"zapshift/internal/handlers/rest/parcel_get"
	"zapshift/internal/handlers/rest/parcel_patch"
	"zapshift/internal/handlers/rest/parcel_post"
	"zapshift/internal/handlers/rest/parcels_get"
	"zapshift/internal/handlers/rest/payment_success_patch"
	"zapshift/internal/handlers/rest/payments_get"
	"zapshift/internal/handlers/rest/ping_get"
	"zapshift/internal/handlers/rest/rider_patch"
	"zapshift/internal/handlers/rest/rider_post"
	"zapshift/internal/handlers/rest/riders_get"
	"zapshift/internal/handlers/rest/user_post"
	"zapshift/internal/handlers/rest/user_role_get"
	"zapshift/internal/handlers/rest/user_role_patch"
	"zapshift/internal/handlers/rest/users_get"
	"zapshift/internal/pkg/config"
	"zapshift/internal/pkg/dotenv"
	"zapshift/internal/pkg/grpchealth"
	metrics_system "zapshift/internal/pkg/metrics"
	"zapshift/internal/pkg/middlewares/auth"
	"zapshift/internal/pkg/middlewares/graceful_shutdown"
	"zapshift/internal/pkg/middlewares/metrics"
	"zapshift/internal/pkg/middlewares/rate_limiter"
	"zapshift/internal/pkg/middlewares/timeout"
	"zapshift/internal/pkg/migrations"
	"zapshift/internal/pkg/postgres"
	"zapshift/pkg/logger"
	"zapshift/pkg/logger/zap_adapter"
	"zapshift/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(os.Args); err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("process", "service"))

	mainLog.Info("starting zapshift application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		err = migrations.Up(ctx, log, pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	// workersCtx отменяется по сигналу, фоновые задачи останавливаются вместе с приемом запросов.
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(workersCtx)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown(), чтобы in-flight запросы завершились.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	healthServer := grpchealth.New(log)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
			healthServerErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	healthServer.Shutdown(shutdownCtx)

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		}
	}

	stopOngoingGracefully()
	stopWorkers()
	businessApp.BackgroundWorkers.Wait()

	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/parcels", parcels_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods(http.MethodPost)
	router.Handle("/parcels/{id}", parcel_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/parcels/{id}", parcel_delete.New(log, app.ServiceParcel)).Methods(http.MethodDelete)

	router.Handle("/create-checkout-session", checkout_session_post.New(log, app.ServicePayment)).Methods(http.MethodPost)
	router.Handle("/payment-success", payment_success_patch.New(log, app.ServicePayment)).Methods(http.MethodPatch)

	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods(http.MethodPost)
	router.Handle("/users/{user}/role", user_role_get.New(log, app.ServiceUser)).Methods(http.MethodGet)

	router.Handle("/riders", riders_get.New(log, app.ServiceRider)).Methods(http.MethodGet)
	router.Handle("/riders", rider_post.New(log, app.ServiceRider)).Methods(http.MethodPost)

	// Маршруты ниже требуют Authorization: Bearer <token>.
	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware(log, app.Verifier))

	protected.Handle("/parcels/{id}", parcel_patch.New(log, app.Policy, app.ServiceParcel)).Methods(http.MethodPatch)
	protected.Handle("/parcels/{id}/delivered", parcel_delivered_patch.New(log, app.Policy, app.ServiceParcel)).Methods(http.MethodPatch)
	protected.Handle("/payments", payments_get.New(log, app.Policy, app.ServicePayment)).Methods(http.MethodGet)
	protected.Handle("/users", users_get.New(log, app.Policy, app.ServiceUser)).Methods(http.MethodGet)
	protected.Handle("/users/{user}/role", user_role_patch.New(log, app.Policy, app.ServiceUser)).Methods(http.MethodPatch)
	protected.Handle("/riders/{id}", rider_patch.New(log, app.Policy, app.ServiceRider)).Methods(http.MethodPatch)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
