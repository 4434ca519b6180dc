// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/database/schema"
	"github.com/taibuivan/uibutton/internal/platform/dberr"
)

/*
PostgresRepository implements [Repository] on the core.button_contract table.

Variants, props, and accessibility rules are stored as JSONB documents, so
the aggregate is read and written in one row. Variant-type lookups use JSONB
containment (@>) and are served by a GIN index.
*/
type PostgresRepository struct {
	pool  *pgxpool.Pool
	clock shared.Clock
}

// NewPostgresRepository constructs a PostgreSQL backed contract store.
func NewPostgresRepository(pool *pgxpool.Pool, clock shared.Clock) *PostgresRepository {
	return &PostgresRepository{pool: pool, clock: clock}
}

// selectColumns is the projection every read uses, in scan order.
var selectColumns = strings.Join(schema.ButtonContract.Columns(), ", ")

/*
Save upserts the contract by ID.

Description: A unique violation on the name column means another contract
already owns the name and surfaces as CONFLICT.
*/
func (repository *PostgresRepository) Save(ctx context.Context, contract *Contract) error {
	stored := toRecord(contract)

	variantsJSON, propsJSON, accessibilityJSON, err := encodeDocuments(stored)
	if err != nil {
		return err
	}

	table := schema.ButtonContract
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		table.Table,
		table.ID, table.Name, table.Variants, table.Props, table.Accessibility, table.CreatedAt, table.UpdatedAt,
		table.ID,
		table.Name, table.Name,
		table.Variants, table.Variants,
		table.Props, table.Props,
		table.Accessibility, table.Accessibility,
		table.UpdatedAt, table.UpdatedAt,
	)

	_, err = repository.pool.Exec(ctx, query,
		stored.ID,
		stored.Name,
		variantsJSON,
		propsJSON,
		accessibilityJSON,
		stored.CreatedAt,
		stored.UpdatedAt,
	)

	if dberr.IsUniqueViolation(err) {
		return ErrNameTaken(stored.Name)
	}
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to save button contract: %w", err), ResourceName)
	}

	return nil
}

// FindByID implements [Repository].
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.ButtonContract.Table, schema.ButtonContract.ID)

	return repository.findOne(ctx, query, id)
}

// FindByName implements [Repository].
func (repository *PostgresRepository) FindByName(ctx context.Context, name string) (*Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.ButtonContract.Table, schema.ButtonContract.Name)

	return repository.findOne(ctx, query, name)
}

// FindAll implements [Repository].
func (repository *PostgresRepository) FindAll(ctx context.Context) ([]*Contract, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		selectColumns, schema.ButtonContract.Table, schema.ButtonContract.Name)

	return repository.findMany(ctx, query)
}

/*
List returns a filtered page ordered by name and the total match count.

Description: The variant filter becomes a single JSONB containment predicate
([{"type":"size"},{"type":"intent"}]), which requires every listed type.
*/
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Contract, int, error) {
	table := schema.ButtonContract

	var where string
	args := []any{}
	if len(filter.VariantTypes) > 0 {
		containment, err := variantContainment(filter.VariantTypes...)
		if err != nil {
			return nil, 0, err
		}
		args = append(args, containment)
		where = fmt.Sprintf("WHERE %s @> $1::jsonb", table.Variants)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(fmt.Errorf("postgres: failed to count button contracts: %w", err), ResourceName)
	}

	args = append(args, limit, offset)
	pageQuery := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		selectColumns, table.Table, where, table.Name, len(args)-1, len(args))

	contracts, err := repository.findMany(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return contracts, total, nil
}

// FindByVariantType implements [Repository].
func (repository *PostgresRepository) FindByVariantType(ctx context.Context, variantType VariantType) ([]*Contract, error) {
	containment, err := variantContainment(variantType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s @> $1::jsonb ORDER BY %s`,
		selectColumns, schema.ButtonContract.Table, schema.ButtonContract.Variants, schema.ButtonContract.Name)

	return repository.findMany(ctx, query, containment)
}

// Delete implements [Repository].
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ButtonContract.Table, schema.ButtonContract.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(fmt.Errorf("postgres: failed to delete button contract: %w", err), ResourceName)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Exists implements [Repository].
func (repository *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`,
		schema.ButtonContract.Table, schema.ButtonContract.ID)

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(fmt.Errorf("postgres: failed to check button contract: %w", err), ResourceName)
	}

	return exists, nil
}

// Count implements [Repository].
func (repository *PostgresRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.ButtonContract.Table)

	var count int
	if err := repository.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(fmt.Errorf("postgres: failed to count button contracts: %w", err), ResourceName)
	}

	return count, nil
}

// # Row Mapping

func (repository *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (*Contract, error) {
	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to query button contract: %w", err), ResourceName)
	}

	stored, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to scan button contract: %w", err), ResourceName)
	}

	return stored.restore(repository.clock)
}

func (repository *PostgresRepository) findMany(ctx context.Context, query string, args ...any) ([]*Contract, error) {
	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to query button contracts: %w", err), ResourceName)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, dberr.Wrap(fmt.Errorf("postgres: failed to scan button contracts: %w", err), ResourceName)
	}

	contracts := make([]*Contract, 0, len(records))
	for _, stored := range records {
		contract, err := stored.restore(repository.clock)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	return contracts, nil
}

// scanRecord decodes one row in [selectColumns] order.
func scanRecord(row pgx.CollectableRow) (record, error) {
	var (
		stored            record
		variantsJSON      []byte
		propsJSON         []byte
		accessibilityJSON []byte
	)

	if err := row.Scan(
		&stored.ID,
		&stored.Name,
		&variantsJSON,
		&propsJSON,
		&accessibilityJSON,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	); err != nil {
		return record{}, err
	}

	if err := json.Unmarshal(variantsJSON, &stored.Variants); err != nil {
		return record{}, fmt.Errorf("postgres: failed to unmarshal variants: %w", err)
	}
	if err := json.Unmarshal(propsJSON, &stored.Props); err != nil {
		return record{}, fmt.Errorf("postgres: failed to unmarshal props: %w", err)
	}
	if err := json.Unmarshal(accessibilityJSON, &stored.Accessibility); err != nil {
		return record{}, fmt.Errorf("postgres: failed to unmarshal accessibility: %w", err)
	}

	return stored, nil
}

func encodeDocuments(stored record) (variants, props, accessibility []byte, err error) {
	if variants, err = json.Marshal(stored.Variants); err != nil {
		return nil, nil, nil, fmt.Errorf("postgres: failed to marshal variants: %w", err)
	}
	if props, err = json.Marshal(stored.Props); err != nil {
		return nil, nil, nil, fmt.Errorf("postgres: failed to marshal props: %w", err)
	}
	if accessibility, err = json.Marshal(stored.Accessibility); err != nil {
		return nil, nil, nil, fmt.Errorf("postgres: failed to marshal accessibility: %w", err)
	}
	return variants, props, accessibility, nil
}

// variantContainment renders the JSONB document matching every listed type.
func variantContainment(types ...VariantType) (string, error) {
	probe := make([]map[string]string, len(types))
	for i, variantType := range types {
		probe[i] = map[string]string{"type": string(variantType)}
	}

	encoded, err := json.Marshal(probe)
	if err != nil {
		return "", fmt.Errorf("postgres: failed to encode variant filter: %w", err)
	}
	return string(encoded), nil
}
