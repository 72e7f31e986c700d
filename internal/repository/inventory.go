package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var _inventoryColumns = []string{
	"id", "name", "quantity", "restock_level", "condition", "restocking_available",
}

type InventoryRepository struct {
	db *postgres.Postgres
}

func NewInventoryRepository(db *postgres.Postgres) *InventoryRepository {
	return &InventoryRepository{db}
}

func (r *InventoryRepository) Create(
	ctx context.Context,
	inventory *entity.Inventory,
) (*entity.Inventory, error) {
	const op = "repository.inventory.Create"

	query := r.db.Builder.Insert("inventories").
		Columns("name", "quantity", "restock_level", "condition", "restocking_available").
		Values(
			inventory.Name,
			inventory.Quantity,
			inventory.RestockLevel,
			string(inventory.Condition),
			inventory.RestockingAvailable,
		).
		Suffix("RETURNING " + strings.Join(_inventoryColumns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanInventory(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (r *InventoryRepository) GetByID(
	ctx context.Context,
	id int64,
) (*entity.Inventory, error) {
	const op = "repository.inventory.GetByID"

	query := r.db.Builder.Select(_inventoryColumns...).
		From("inventories").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanInventory(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// GetByIDForUpdate locks the row until the surrounding transaction finishes.
func (r *InventoryRepository) GetByIDForUpdate(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id int64,
) (*entity.Inventory, error) {
	const op = "repository.inventory.GetByIDForUpdate"

	query := r.db.Builder.Select(_inventoryColumns...).
		From("inventories").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanInventory(queryExecuter.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (r *InventoryRepository) List(
	ctx context.Context,
	filter entity.ListFilter,
) ([]*entity.Inventory, error) {
	const op = "repository.inventory.List"

	query := r.db.Builder.Select(_inventoryColumns...).
		From("inventories").
		OrderBy("id")

	if eq := filterConditions(filter); len(eq) > 0 {
		query = query.Where(eq)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Inventory, 0)
	for rows.Next() {
		inventory, scanErr := scanInventory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, scanErr)
		}
		result = append(result, inventory)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func (r *InventoryRepository) Update(
	ctx context.Context,
	id int64,
	inventory *entity.Inventory,
) (*entity.Inventory, error) {
	const op = "repository.inventory.Update"

	query := r.db.Builder.Update("inventories").
		Set("name", inventory.Name).
		Set("quantity", inventory.Quantity).
		Set("restock_level", inventory.RestockLevel).
		Set("condition", string(inventory.Condition)).
		Set("restocking_available", inventory.RestockingAvailable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(_inventoryColumns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanInventory(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// Delete is idempotent: deleting an absent id is not an error.
func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	const op = "repository.inventory.Delete"

	query := r.db.Builder.Delete("inventories").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	if _, err = r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}

	return nil
}

func (r *InventoryRepository) SetRestockingAvailable(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id int64,
	available bool,
) (*entity.Inventory, error) {
	const op = "repository.inventory.SetRestockingAvailable"

	query := r.db.Builder.Update("inventories").
		Set("restocking_available", available).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(_inventoryColumns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanInventory(queryExecuter.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func filterConditions(filter entity.ListFilter) squirrel.Eq {
	eq := squirrel.Eq{}
	if filter.Name != nil {
		eq["name"] = *filter.Name
	}
	if filter.Quantity != nil {
		eq["quantity"] = *filter.Quantity
	}
	if filter.RestockLevel != nil {
		eq["restock_level"] = *filter.RestockLevel
	}
	if filter.Condition != nil {
		eq["condition"] = string(*filter.Condition)
	}
	if filter.RestockingAvailable != nil {
		eq["restocking_available"] = *filter.RestockingAvailable
	}
	return eq
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	inventory := &entity.Inventory{}
	var condition string

	err := row.Scan(
		&inventory.ID,
		&inventory.Name,
		&inventory.Quantity,
		&inventory.RestockLevel,
		&condition,
		&inventory.RestockingAvailable,
	)
	if err != nil {
		return nil, err
	}

	inventory.Condition = entity.Condition(condition)
	return inventory, nil
}
