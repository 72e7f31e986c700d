package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/cache"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres/transaction"

	"github.com/go-playground/validator/v10"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

type (
	InventoryRepository interface {
		Create(ctx context.Context, inventory *entity.Inventory) (*entity.Inventory, error)
		GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
		GetByIDForUpdate(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id int64,
		) (*entity.Inventory, error)
		List(ctx context.Context, filter entity.ListFilter) ([]*entity.Inventory, error)
		Update(ctx context.Context, id int64, inventory *entity.Inventory) (*entity.Inventory, error)
		Delete(ctx context.Context, id int64) error
		SetRestockingAvailable(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id int64,
			available bool,
		) (*entity.Inventory, error)
	}

	InventoryService struct {
		repo      InventoryRepository
		txManager transaction.Manager
		logger    logger.Logger
		cache     cache.Cache[int64, *entity.Inventory]
		cacheTTL  time.Duration
		validate  *validator.Validate
	}
)

func NewInventoryService(
	repo InventoryRepository,
	txManager transaction.Manager,
	logger logger.Logger,
	cache cache.Cache[int64, *entity.Inventory],
	cacheTTL time.Duration,
) *InventoryService {
	cache.SetOnEvicted(func(key int64, value *entity.Inventory) {
		logger.Infow("cache eviction",
			"key", key,
			"type", fmt.Sprintf("%T", value),
		)
	})

	return &InventoryService{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validate:  validator.New(),
	}
}

func (is *InventoryService) RestoreCache(ctx context.Context) error {
	const op = "service.RestoreCache"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "starting cache restoration from database")

	inventories, err := is.repo.List(ctx, entity.ListFilter{})
	if err != nil {
		return fmt.Errorf("%s: list inventories: %w", op, err)
	}

	if len(inventories) == 0 {
		log.LogAttrs(ctx, logger.InfoLevel, "no inventory records in database to restore cache")
		return nil
	}

	for _, inventory := range inventories {
		is.cache.Put(inventory.ID, inventory, is.cacheTTL)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "cache restoration finished",
		logger.Int("restored_to_cache", len(inventories)),
	)

	return nil
}

func (is *InventoryService) CreateInventory(
	ctx context.Context,
	inventory *entity.Inventory,
) (*entity.Inventory, error) {
	const op = "service.CreateInventory"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "create inventory started",
		logger.String("op", op),
		logger.String("name", inventory.Name),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > 200*time.Millisecond {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if err := is.validateInventory(inventory); err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "inventory validation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("name", inventory.Name),
		)
		return nil, fmt.Errorf("%s: validate inventory: %w", op, err)
	}

	created, err := is.createInventoryWithTimeout(ctx, inventory)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "inventory creation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("name", inventory.Name),
		)
		return nil, fmt.Errorf("%s: create inventory: %w", op, err)
	}

	is.cache.Put(created.ID, created, is.cacheTTL)

	duration := time.Since(startTime)
	log.LogAttrs(ctx, logger.InfoLevel, "inventory created successfully",
		logger.String("op", op),
		logger.Int64("id", created.ID),
		logger.String("duration", duration.String()),
	)

	return created, nil
}

func (is *InventoryService) createInventoryWithTimeout(
	ctx context.Context,
	inventory *entity.Inventory,
) (*entity.Inventory, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	return is.repo.Create(ctx, inventory)
}

func (is *InventoryService) GetInventory(
	ctx context.Context,
	id int64,
) (*entity.Inventory, error) {
	const op = "service.GetInventory"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "get inventory requested",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > 200*time.Millisecond {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.Int64("id", id),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if cached, found := is.cache.Get(id); found {
		log.LogAttrs(ctx, logger.InfoLevel, "inventory served from cache",
			logger.String("op", op),
			logger.Int64("id", id),
		)
		return cached, nil
	}

	log.LogAttrs(ctx, logger.DebugLevel, "cache miss",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	inventory, err := is.fetchInventoryFromDB(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to get inventory from database",
			logger.String("op", op),
			logger.Any("error", err),
			logger.Int64("id", id),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	is.cache.Put(inventory.ID, inventory, is.cacheTTL)

	duration := time.Since(startTime)
	log.LogAttrs(ctx, logger.InfoLevel, "inventory served from database",
		logger.String("op", op),
		logger.Int64("id", id),
		logger.String("duration", duration.String()),
	)

	return inventory, nil
}

func (is *InventoryService) fetchInventoryFromDB(
	ctx context.Context,
	id int64,
) (*entity.Inventory, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	return is.repo.GetByID(ctx, id)
}

func (is *InventoryService) ListInventories(
	ctx context.Context,
	filter entity.ListFilter,
) ([]*entity.Inventory, error) {
	const op = "service.ListInventories"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "list inventories requested",
		logger.String("op", op),
		logger.Bool("filtered", !filter.Empty()),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > 200*time.Millisecond {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("duration", duration.String()),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	inventories, err := is.repo.List(ctx, filter)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to list inventories",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, fmt.Errorf("%s: list inventories: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventories listed",
		logger.String("op", op),
		logger.Int("count", len(inventories)),
	)

	return inventories, nil
}

func (is *InventoryService) UpdateInventory(
	ctx context.Context,
	id int64,
	inventory *entity.Inventory,
) (*entity.Inventory, error) {
	const op = "service.UpdateInventory"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "update inventory started",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > 200*time.Millisecond {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.Int64("id", id),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if err := is.validateInventory(inventory); err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "inventory validation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.Int64("id", id),
		)
		return nil, fmt.Errorf("%s: validate inventory: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	updated, err := is.repo.Update(ctx, id, inventory)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "inventory update failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.Int64("id", id),
		)
		return nil, fmt.Errorf("%s: update inventory: %w", op, err)
	}

	is.cache.Put(updated.ID, updated, is.cacheTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "inventory updated successfully",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	return updated, nil
}

func (is *InventoryService) DeleteInventory(ctx context.Context, id int64) error {
	const op = "service.DeleteInventory"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "delete inventory started",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	if err := is.repo.Delete(ctx, id); err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "inventory deletion failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.Int64("id", id),
		)
		return fmt.Errorf("%s: delete inventory: %w", op, err)
	}

	is.cache.Remove(id)

	log.LogAttrs(ctx, logger.InfoLevel, "inventory deleted",
		logger.String("op", op),
		logger.Int64("id", id),
	)

	return nil
}

// SetRestocking flips restocking_available to the requested value. The row is
// locked for the duration of the transaction so concurrent toggles serialize:
// the loser observes the flag already at the requested value and gets
// entity.ErrConflictingData.
func (is *InventoryService) SetRestocking(
	ctx context.Context,
	id int64,
	available bool,
) (*entity.Inventory, error) {
	const op = "service.SetRestocking"
	log := is.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "set restocking started",
		logger.String("op", op),
		logger.Int64("id", id),
		logger.Bool("available", available),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > 200*time.Millisecond {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.Int64("id", id),
				logger.String("duration", duration.String()),
			)
		}
	}()

	var updated *entity.Inventory

	err := is.txManager.ExecuteInTransaction(
		ctx,
		"SetRestocking",
		func(tx postgres.QueryExecuter) error {
			current, txErr := is.repo.GetByIDForUpdate(ctx, tx, id)
			if txErr != nil {
				return transaction.HandleError("SetRestocking", "get inventory for update", txErr)
			}

			if current.RestockingAvailable == available {
				return fmt.Errorf(
					"%w: restocking_available is already %t",
					entity.ErrConflictingData, available,
				)
			}

			updated, txErr = is.repo.SetRestockingAvailable(ctx, tx, id, available)
			if txErr != nil {
				return transaction.HandleError("SetRestocking", "set restocking available", txErr)
			}

			return nil
		},
	)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) || errors.Is(err, entity.ErrConflictingData) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "set restocking failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.Int64("id", id),
		)
		return nil, err
	}

	is.cache.Put(updated.ID, updated, is.cacheTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "restocking flag updated",
		logger.String("op", op),
		logger.Int64("id", id),
		logger.Bool("available", updated.RestockingAvailable),
	)

	return updated, nil
}

func (is *InventoryService) validateInventory(inventory *entity.Inventory) error {
	if inventory == nil {
		return entity.ErrInvalidData
	}
	if err := is.validate.Struct(inventory); err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidData, err)
	}
	return nil
}
