package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/returndesk/internal/config"
	"github.com/ibeloyar/returndesk/internal/gateway"
	"github.com/ibeloyar/returndesk/internal/metrics"
	"github.com/ibeloyar/returndesk/internal/repository/inventoryapi"
	"github.com/ibeloyar/returndesk/internal/service"
	"github.com/ibeloyar/returndesk/pgk/logger"
	"github.com/ibeloyar/returndesk/pgk/retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/returndesk/internal/controller/http"
)

var kst = time.FixedZone("KST", 9*60*60)

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		lg.Warnf("unknown timezone %q, falling back to KST: %v", cfg.Timezone, err)
		loc = kst
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := openStorage(signalCtx, cfg, lg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	policies := service.NewPolicies(cfg.ReturnWindowDays, cfg.VIPGraceDays, cfg.LateReturnFee, cfg.ChangeOfMindFee, cfg.LowStockThreshold)

	s := service.New(
		storage.orders,
		storage.inventory,
		stockProvider(cfg, storage, lg),
		policies,
		service.WithClock(func() time.Time { return time.Now().In(loc) }),
		service.WithRecorder(m),
	)

	dispatcher, err := gateway.New(s, lg, m)
	if err != nil {
		storage.Shutdown()
		return err
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, dispatcher, storage, lg)
	router = httpController.InitRoutes(router, handlers, httpController.RouterConfig{
		SecretKey: cfg.SecretKey,
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	if cfg.SecretKey == "" {
		lg.Warn("SECRET_KEY is empty, gateway auth disabled")
	}

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	lg.Infof("starting server on %s, tools: %v", cfg.RunAddress, dispatcher.Tools())

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}

// stockProvider resolves exchange stock status from the inventory service
// when configured, from a simulation in demo mode, and from the local
// inventory otherwise. With Postgres and the inventory service both set the
// active inventory backend is kept in sync with the service.
func stockProvider(cfg config.Config, st *storage, lg *zap.SugaredLogger) service.StockStatusProvider {
	switch {
	case cfg.InventoryServiceAddress != "":
		client := inventoryapi.New(cfg.InventoryServiceAddress, cfg.LowStockThreshold, retryablehttp.RetryConfig{})
		if st.pg != nil {
			st.pg.RunInventorySync(client, st.sink, cfg.InventorySyncInterval, 0)
			lg.Infof("syncing inventory from %s every %s into %T", cfg.InventoryServiceAddress, cfg.InventorySyncInterval, st.sink)
		} else {
			lg.Warn("inventory sync skipped, it needs DATABASE_URI to list inventory rows")
		}
		return client
	case cfg.RandomStock:
		lg.Warn("exchange stock status is simulated")
		return service.NewRandomStockProvider(service.NewLockedRand(time.Now().UnixNano()))
	default:
		return service.NewInventoryStockProvider(st.inventory, cfg.LowStockThreshold)
	}
}
