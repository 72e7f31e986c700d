package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/config"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/repository"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/service"
	httpt "github.com/CSCI-GA-2820-FA24-003/inventory/internal/transport/http"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/cache"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/metric"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres/transaction"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(
		db,
		log,
		metrics,
	)
	if txErr != nil {
		return txErr
	}

	inventoryCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(inventoryCache)

	inventoryService := initInventoryService(
		cfg,
		db,
		txManager,
		inventoryCache,
		log,
	)

	if err := inventoryService.RestoreCache(ctx); err != nil {
		log.Errorw("failed to restore cache from database", "error", err)
	}

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, inventoryService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[int64, *entity.Inventory], error) {
	inventoryCache, err := cache.NewLRUCache[int64, *entity.Inventory](
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	inventoryCache.StartCleanup(cfg.CleanupInterval)
	return inventoryCache, nil
}

func stopCache(inventoryCache cache.Cache[int64, *entity.Inventory]) {
	if inventoryCache != nil {
		inventoryCache.StopCleanup()
	}
}

func initInventoryService(
	cfg *config.Config,
	db *postgres.Postgres,
	txManager transaction.Manager,
	inventoryCache cache.Cache[int64, *entity.Inventory],
	log logger.Logger,
) *service.InventoryService {
	inventoryRepo := repository.NewInventoryRepository(db)

	inventoryService := service.NewInventoryService(
		inventoryRepo,
		txManager,
		log.With("component", "inventory service"),
		inventoryCache,
		cfg.Cache.TTL,
	)

	return inventoryService
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	inventoryService *service.InventoryService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewInventoryHandler(inventoryService, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return err != nil && err.Error() == "shutdown signal"
}
