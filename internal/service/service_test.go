package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	mock_repository "github.com/CSCI-GA-2820-FA24-003/inventory/internal/repository/mock"
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/service"
	mock_cache "github.com/CSCI-GA-2820-FA24-003/inventory/pkg/cache/mock"
	mock_logger "github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger/mock"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres"
	mock_transaction "github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres/transaction/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
)

func generateFakeInventory() *entity.Inventory {
	conditions := []entity.Condition{
		entity.ConditionNew,
		entity.ConditionOpenBox,
		entity.ConditionUsed,
	}

	return &entity.Inventory{
		ID:                  int64(gofakeit.Number(1, 100000)),
		Name:                gofakeit.ProductName(),
		Quantity:            int64(gofakeit.Number(0, 1000)),
		RestockLevel:        int64(gofakeit.Number(0, 100)),
		Condition:           conditions[gofakeit.Number(0, len(conditions)-1)],
		RestockingAvailable: gofakeit.Bool(),
	}
}

type serviceMocks struct {
	repo      *mock_repository.MockInventoryRepository
	txManager *mock_transaction.MockManager
	logger    *mock_logger.MockLogger
	cache     *mock_cache.MockCache[int64, *entity.Inventory]
}

func newServiceWithMocks(ctrl *gomock.Controller) (*service.InventoryService, serviceMocks) {
	m := serviceMocks{
		repo:      mock_repository.NewMockInventoryRepository(ctrl),
		txManager: mock_transaction.NewMockManager(ctrl),
		logger:    mock_logger.NewMockLogger(ctrl),
		cache:     mock_cache.NewMockCache[int64, *entity.Inventory](ctrl),
	}

	m.cache.EXPECT().SetOnEvicted(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Ctx(gomock.Any()).Return(m.logger).AnyTimes()
	m.logger.EXPECT().
		LogAttrs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()

	svc := service.NewInventoryService(
		m.repo,
		m.txManager,
		m.logger,
		m.cache,
		time.Minute*5,
	)

	return svc, m
}

func TestInventoryService_CreateInventory(t *testing.T) {
	testCases := []struct {
		desc        string
		setup       func() *entity.Inventory
		mocks       func(m serviceMocks, inventory *entity.Inventory)
		expectedErr error
	}{
		{
			desc:  "Success",
			setup: generateFakeInventory,
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Eq(inventory)).
					Return(inventory, nil).Times(1)

				m.cache.EXPECT().Put(inventory.ID, gomock.Eq(inventory), gomock.Any()).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "InvalidInventory_EmptyName",
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.Name = ""
				return inventory
			},
			mocks:       func(m serviceMocks, inventory *entity.Inventory) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "InvalidInventory_NegativeQuantity",
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.Quantity = -1
				return inventory
			},
			mocks:       func(m serviceMocks, inventory *entity.Inventory) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "InvalidInventory_NegativeRestockLevel",
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.RestockLevel = -5
				return inventory
			},
			mocks:       func(m serviceMocks, inventory *entity.Inventory) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "InvalidInventory_UnknownCondition",
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.Condition = "BROKEN"
				return inventory
			},
			mocks:       func(m serviceMocks, inventory *entity.Inventory) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:  "RepositoryError",
			setup: generateFakeInventory,
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Eq(inventory)).
					Return(nil, errors.New("database error")).Times(1)
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventory := tc.setup()

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, inventory)

			created, err := svc.CreateInventory(context.Background(), inventory)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if errors.Is(tc.expectedErr, entity.ErrInvalidData) &&
					!errors.Is(err, entity.ErrInvalidData) {
					t.Fatalf("expected error to contain %v, got %v", tc.expectedErr, err)
				}
				if created != nil {
					t.Error("expected nil inventory on error, got non-nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if created == nil {
					t.Fatal("expected non-nil inventory on success")
				}
			}
		})
	}
}

func TestInventoryService_GetInventory(t *testing.T) {
	testCases := []struct {
		desc        string
		mocks       func(m serviceMocks, inventory *entity.Inventory)
		expectedErr error
	}{
		{
			desc: "CacheHit",
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.cache.EXPECT().Get(inventory.ID).
					Return(inventory, true).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "CacheMiss_ServedFromDatabase",
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.cache.EXPECT().Get(inventory.ID).
					Return(nil, false).Times(1)

				m.repo.EXPECT().GetByID(gomock.Any(), inventory.ID).
					Return(inventory, nil).Times(1)

				m.cache.EXPECT().Put(inventory.ID, gomock.Eq(inventory), gomock.Any()).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "NotFound",
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.cache.EXPECT().Get(inventory.ID).
					Return(nil, false).Times(1)

				m.repo.EXPECT().GetByID(gomock.Any(), inventory.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
		{
			desc: "DatabaseError",
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.cache.EXPECT().Get(inventory.ID).
					Return(nil, false).Times(1)

				m.repo.EXPECT().GetByID(gomock.Any(), inventory.ID).
					Return(nil, errors.New("database error")).Times(1)
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventory := generateFakeInventory()

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, inventory)

			result, err := svc.GetInventory(context.Background(), inventory.ID)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if errors.Is(tc.expectedErr, entity.ErrDataNotFound) &&
					!errors.Is(err, entity.ErrDataNotFound) {
					t.Fatalf("expected error to contain %v, got %v", tc.expectedErr, err)
				}
				if result != nil {
					t.Error("expected nil inventory on error, got non-nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if result == nil {
					t.Fatal("expected non-nil inventory on success")
				}
				if result.ID != inventory.ID {
					t.Errorf("expected inventory id %d, got %d", inventory.ID, result.ID)
				}
			}
		})
	}
}

func TestInventoryService_ListInventories(t *testing.T) {
	testCases := []struct {
		desc        string
		filter      entity.ListFilter
		mocks       func(m serviceMocks, filter entity.ListFilter, inventories []*entity.Inventory)
		expectedErr error
	}{
		{
			desc:   "Success_Unfiltered",
			filter: entity.ListFilter{},
			mocks: func(m serviceMocks, filter entity.ListFilter, inventories []*entity.Inventory) {
				m.repo.EXPECT().List(gomock.Any(), filter).
					Return(inventories, nil).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "Success_Filtered",
			filter: func() entity.ListFilter {
				name := "Widget"
				condition := entity.ConditionNew
				return entity.ListFilter{Name: &name, Condition: &condition}
			}(),
			mocks: func(m serviceMocks, filter entity.ListFilter, inventories []*entity.Inventory) {
				m.repo.EXPECT().List(gomock.Any(), filter).
					Return(inventories, nil).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc:   "DatabaseError",
			filter: entity.ListFilter{},
			mocks: func(m serviceMocks, filter entity.ListFilter, inventories []*entity.Inventory) {
				m.repo.EXPECT().List(gomock.Any(), filter).
					Return(nil, errors.New("database error")).Times(1)
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventories := []*entity.Inventory{generateFakeInventory(), generateFakeInventory()}

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, tc.filter, inventories)

			result, err := svc.ListInventories(context.Background(), tc.filter)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if result != nil {
					t.Error("expected nil result on error, got non-nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if len(result) != len(inventories) {
					t.Errorf("expected %d inventories, got %d", len(inventories), len(result))
				}
			}
		})
	}
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	testCases := []struct {
		desc        string
		setup       func() *entity.Inventory
		mocks       func(m serviceMocks, inventory *entity.Inventory)
		expectedErr error
	}{
		{
			desc:  "Success",
			setup: generateFakeInventory,
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.repo.EXPECT().Update(gomock.Any(), inventory.ID, gomock.Eq(inventory)).
					Return(inventory, nil).Times(1)

				m.cache.EXPECT().Put(inventory.ID, gomock.Eq(inventory), gomock.Any()).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "InvalidInventory",
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.Name = ""
				return inventory
			},
			mocks:       func(m serviceMocks, inventory *entity.Inventory) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:  "NotFound",
			setup: generateFakeInventory,
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.repo.EXPECT().Update(gomock.Any(), inventory.ID, gomock.Eq(inventory)).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventory := tc.setup()

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, inventory)

			updated, err := svc.UpdateInventory(context.Background(), inventory.ID, inventory)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error to contain %v, got %v", tc.expectedErr, err)
				}
				if updated != nil {
					t.Error("expected nil inventory on error, got non-nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if updated == nil {
					t.Fatal("expected non-nil inventory on success")
				}
			}
		})
	}
}

func TestInventoryService_DeleteInventory(t *testing.T) {
	testCases := []struct {
		desc        string
		mocks       func(m serviceMocks, id int64)
		expectedErr error
	}{
		{
			desc: "Success",
			mocks: func(m serviceMocks, id int64) {
				m.repo.EXPECT().Delete(gomock.Any(), id).
					Return(nil).Times(1)

				m.cache.EXPECT().Remove(id).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "DatabaseError",
			mocks: func(m serviceMocks, id int64) {
				m.repo.EXPECT().Delete(gomock.Any(), id).
					Return(errors.New("database error")).Times(1)
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			id := int64(gofakeit.Number(1, 100000))

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, id)

			err := svc.DeleteInventory(context.Background(), id)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestInventoryService_SetRestocking(t *testing.T) {
	testCases := []struct {
		desc        string
		available   bool
		setup       func() *entity.Inventory
		mocks       func(m serviceMocks, inventory *entity.Inventory)
		expectedErr error
	}{
		{
			desc:      "Success_StartRestocking",
			available: false,
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.RestockingAvailable = true
				return inventory
			},
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				updated := *inventory
				updated.RestockingAvailable = false

				m.txManager.EXPECT().ExecuteInTransaction(
					gomock.Any(), "SetRestocking", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), nil, inventory.ID).
					Return(inventory, nil).Times(1)

				m.repo.EXPECT().SetRestockingAvailable(gomock.Any(), nil, inventory.ID, false).
					Return(&updated, nil).Times(1)

				m.cache.EXPECT().Put(inventory.ID, gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc:      "Success_StopRestocking",
			available: true,
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.RestockingAvailable = false
				return inventory
			},
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				updated := *inventory
				updated.RestockingAvailable = true

				m.txManager.EXPECT().ExecuteInTransaction(
					gomock.Any(), "SetRestocking", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), nil, inventory.ID).
					Return(inventory, nil).Times(1)

				m.repo.EXPECT().SetRestockingAvailable(gomock.Any(), nil, inventory.ID, true).
					Return(&updated, nil).Times(1)

				m.cache.EXPECT().Put(inventory.ID, gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc:      "Conflict_AlreadyInRequestedState",
			available: false,
			setup: func() *entity.Inventory {
				inventory := generateFakeInventory()
				inventory.RestockingAvailable = false
				return inventory
			},
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.txManager.EXPECT().ExecuteInTransaction(
					gomock.Any(), "SetRestocking", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), nil, inventory.ID).
					Return(inventory, nil).Times(1)
			},
			expectedErr: entity.ErrConflictingData,
		},
		{
			desc:      "NotFound",
			available: true,
			setup:     generateFakeInventory,
			mocks: func(m serviceMocks, inventory *entity.Inventory) {
				m.txManager.EXPECT().ExecuteInTransaction(
					gomock.Any(), "SetRestocking", gomock.Any(),
				).DoAndReturn(func(
					ctx context.Context,
					opName string,
					txFunc func(postgres.QueryExecuter) error,
				) error {
					return txFunc(nil)
				}).Times(1)

				m.repo.EXPECT().GetByIDForUpdate(gomock.Any(), nil, inventory.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inventory := tc.setup()

			svc, m := newServiceWithMocks(ctrl)
			tc.mocks(m, inventory)

			updated, err := svc.SetRestocking(context.Background(), inventory.ID, tc.available)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error to contain %v, got %v", tc.expectedErr, err)
				}
				if updated != nil {
					t.Error("expected nil inventory on error, got non-nil")
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if updated == nil {
					t.Fatal("expected non-nil inventory on success")
				}
				if updated.RestockingAvailable != tc.available {
					t.Errorf(
						"expected restocking_available %t, got %t",
						tc.available,
						updated.RestockingAvailable,
					)
				}
			}
		})
	}
}

func TestInventoryService_RestoreCache(t *testing.T) {
	t.Run("RestoresAllRecords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inventories := []*entity.Inventory{generateFakeInventory(), generateFakeInventory()}

		svc, m := newServiceWithMocks(ctrl)

		m.repo.EXPECT().List(gomock.Any(), entity.ListFilter{}).
			Return(inventories, nil).Times(1)

		for _, inventory := range inventories {
			m.cache.EXPECT().Put(inventory.ID, gomock.Eq(inventory), gomock.Any()).Times(1)
		}

		if err := svc.RestoreCache(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("EmptyDatabase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newServiceWithMocks(ctrl)

		m.repo.EXPECT().List(gomock.Any(), entity.ListFilter{}).
			Return([]*entity.Inventory{}, nil).Times(1)

		if err := svc.RestoreCache(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("DatabaseError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newServiceWithMocks(ctrl)

		m.repo.EXPECT().List(gomock.Any(), entity.ListFilter{}).
			Return(nil, errors.New("database error")).Times(1)

		if err := svc.RestoreCache(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
