package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/config"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/repository"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/service"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/cache"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/metric"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite

	db               *postgres.Postgres
	inventoryService *service.InventoryService
	cfg              *config.Config
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	s.Require().NoError(err, "Failed to load configuration")
	s.cfg = cfg

	testLogger, err := logger.NewAdapter(cfg)
	s.Require().NoError(err)

	maxRetries := 10
	var db *postgres.Postgres

	for i := range maxRetries {
		db, err = postgres.NewPostgres(&cfg.Postgres, testLogger)
		if err == nil {
			break
		}
		testLogger.Info("Waiting for database to be ready...", "attempt", i+1, "error", err.Error())
		time.Sleep(5 * time.Second)
	}
	s.Require().NoError(err, "Failed to connect to postgres after retries")
	s.db = db

	err = db.Pool.Ping(ctx)
	s.Require().NoError(err, "Failed to ping database")

	txManager, err := transaction.NewManager(db, testLogger, metric.NewFactory().Transaction())
	s.Require().NoError(err)

	inventoryRepo := repository.NewInventoryRepository(db)

	inventoryCache, err := cache.NewLRUCache[int64, *entity.Inventory](
		cfg.Cache.Capacity,
		testLogger,
		metric.NewFactory().Cache(),
	)
	s.Require().NoError(err)

	s.inventoryService = service.NewInventoryService(
		inventoryRepo,
		txManager,
		testLogger,
		inventoryCache,
		cfg.Cache.TTL,
	)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Pool.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(ctx, "TRUNCATE TABLE inventories RESTART IDENTITY;")
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TestCreateAndGetInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fakeInventory := generateFakeInventory()

	created, err := s.inventoryService.CreateInventory(ctx, fakeInventory)
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Require().Positive(created.ID)
	s.Require().Equal(fakeInventory.Name, created.Name)

	retrieved, err := s.inventoryService.GetInventory(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Require().Equal(created.ID, retrieved.ID)
	s.Require().Equal(fakeInventory.Name, retrieved.Name)
	s.Require().Equal(fakeInventory.Quantity, retrieved.Quantity)
	s.Require().Equal(fakeInventory.RestockLevel, retrieved.RestockLevel)
	s.Require().Equal(fakeInventory.Condition, retrieved.Condition)
	s.Require().Equal(fakeInventory.RestockingAvailable, retrieved.RestockingAvailable)
}

func (s *IntegrationTestSuite) TestGetUnknownInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.inventoryService.GetInventory(ctx, 999999)
	s.Require().ErrorIs(err, entity.ErrDataNotFound)
}

func (s *IntegrationTestSuite) TestUpdateInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := s.inventoryService.CreateInventory(ctx, generateFakeInventory())
	s.Require().NoError(err)

	created.Name = "Updated Widget"
	created.Quantity = 42
	created.Condition = entity.ConditionUsed

	updated, err := s.inventoryService.UpdateInventory(ctx, created.ID, created)
	s.Require().NoError(err)
	s.Require().Equal("Updated Widget", updated.Name)
	s.Require().Equal(int64(42), updated.Quantity)
	s.Require().Equal(entity.ConditionUsed, updated.Condition)
}

func (s *IntegrationTestSuite) TestUpdateUnknownInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.inventoryService.UpdateInventory(ctx, 999999, generateFakeInventory())
	s.Require().ErrorIs(err, entity.ErrDataNotFound)
}

func (s *IntegrationTestSuite) TestDeleteInventoryIsIdempotent() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := s.inventoryService.CreateInventory(ctx, generateFakeInventory())
	s.Require().NoError(err)

	s.Require().NoError(s.inventoryService.DeleteInventory(ctx, created.ID))

	_, err = s.inventoryService.GetInventory(ctx, created.ID)
	s.Require().ErrorIs(err, entity.ErrDataNotFound)

	// Second delete of the same id must still succeed.
	s.Require().NoError(s.inventoryService.DeleteInventory(ctx, created.ID))
}

func (s *IntegrationTestSuite) TestListInventoriesWithFilters() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	juice := generateFakeInventory()
	juice.Name = "Juice"
	juice.Condition = entity.ConditionNew
	juice.Quantity = 10

	pencil := generateFakeInventory()
	pencil.Name = "Pencil"
	pencil.Condition = entity.ConditionUsed
	pencil.Quantity = 10

	for _, inventory := range []*entity.Inventory{juice, pencil} {
		_, err := s.inventoryService.CreateInventory(ctx, inventory)
		s.Require().NoError(err)
	}

	all, err := s.inventoryService.ListInventories(ctx, entity.ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)

	name := "Juice"
	byName, err := s.inventoryService.ListInventories(ctx, entity.ListFilter{Name: &name})
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Require().Equal("Juice", byName[0].Name)

	quantity := int64(10)
	condition := entity.ConditionUsed
	combined, err := s.inventoryService.ListInventories(ctx, entity.ListFilter{
		Quantity:  &quantity,
		Condition: &condition,
	})
	s.Require().NoError(err)
	s.Require().Len(combined, 1)
	s.Require().Equal("Pencil", combined[0].Name)

	missing := "Lighter"
	empty, err := s.inventoryService.ListInventories(ctx, entity.ListFilter{Name: &missing})
	s.Require().NoError(err)
	s.Require().Empty(empty)
}

func (s *IntegrationTestSuite) TestSetRestockingConflict() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fakeInventory := generateFakeInventory()
	fakeInventory.RestockingAvailable = true

	created, err := s.inventoryService.CreateInventory(ctx, fakeInventory)
	s.Require().NoError(err)

	updated, err := s.inventoryService.SetRestocking(ctx, created.ID, false)
	s.Require().NoError(err)
	s.Require().False(updated.RestockingAvailable)

	_, err = s.inventoryService.SetRestocking(ctx, created.ID, false)
	s.Require().ErrorIs(err, entity.ErrConflictingData)

	updated, err = s.inventoryService.SetRestocking(ctx, created.ID, true)
	s.Require().NoError(err)
	s.Require().True(updated.RestockingAvailable)

	_, err = s.inventoryService.SetRestocking(ctx, created.ID, true)
	s.Require().ErrorIs(err, entity.ErrConflictingData)
}

func (s *IntegrationTestSuite) TestSetRestockingUnknownInventory() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.inventoryService.SetRestocking(ctx, 999999, false)
	s.Require().ErrorIs(err, entity.ErrDataNotFound)
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func generateFakeInventory() *entity.Inventory {
	conditions := []entity.Condition{
		entity.ConditionNew,
		entity.ConditionOpenBox,
		entity.ConditionUsed,
	}

	return &entity.Inventory{
		Name:                gofakeit.ProductName(),
		Quantity:            int64(gofakeit.Number(0, 1000)),
		RestockLevel:        int64(gofakeit.Number(0, 100)),
		Condition:           conditions[gofakeit.Number(0, len(conditions)-1)],
		RestockingAvailable: gofakeit.Bool(),
	}
}
