// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package contract_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/core/contract"
	"github.com/taibuivan/uibutton/internal/platform/apperr"
	"github.com/taibuivan/uibutton/internal/platform/migration"
	"github.com/taibuivan/uibutton/internal/platform/postgres"
)

// Run with:
//
//	TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/core/contract/
const testDatabaseEnv = "TEST_DATABASE_URL"

func newPostgresRepository(t *testing.T) (*contract.PostgresRepository, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDatabaseEnv)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, "../../../data/migrations", logger))

	pool, err := postgres.NewPool(testContext(t), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(testContext(t), `TRUNCATE core.button_contract`)
	require.NoError(t, err)

	return contract.NewPostgresRepository(pool, fixedClock), pool
}

/*
TestPostgresRepository_SaveAndFind round-trips the JSONB documents.
*/
func TestPostgresRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repository, _ := newPostgresRepository(t)

	stored := standardContract(t, "primary-btn")
	require.NoError(t, repository.Save(ctx, stored))

	byID, err := repository.FindByID(ctx, stored.ID())
	require.NoError(t, err)
	assert.Equal(t, "primary-btn", byID.Name().String())
	assert.Equal(t, stored.Props(), byID.Props())
	assert.Equal(t, stored.Accessibility(), byID.Accessibility())
	require.Len(t, byID.Variants(), len(stored.Variants()))
	for i, variant := range stored.Variants() {
		assert.True(t, variant.Equals(byID.Variants()[i]))
	}
	assert.Empty(t, byID.DomainEvents())

	byName, err := repository.FindByName(ctx, "primary-btn")
	require.NoError(t, err)
	assert.Equal(t, stored.ID(), byName.ID())

	_, err = repository.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

/*
TestPostgresRepository_Upsert updates the row in place.
*/
func TestPostgresRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repository, _ := newPostgresRepository(t)

	stored := newContract(t, "growing", contract.MustVariant("size", "sm"))
	require.NoError(t, repository.Save(ctx, stored))

	require.NoError(t, stored.AddVariant(contract.MustVariant("intent", "primary")))
	require.NoError(t, repository.Save(ctx, stored))

	count, err := repository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fetched, err := repository.FindByID(ctx, stored.ID())
	require.NoError(t, err)
	assert.Len(t, fetched.Variants(), 2)
}

/*
TestPostgresRepository_NameConflict maps the unique index to CONFLICT.
*/
func TestPostgresRepository_NameConflict(t *testing.T) {
	ctx := context.Background()
	repository, _ := newPostgresRepository(t)

	require.NoError(t, repository.Save(ctx, newContract(t, "taken")))

	err := repository.Save(ctx, newContract(t, "taken"))
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestPostgresRepository_VariantContainment filters on every listed type.
*/
func TestPostgresRepository_VariantContainment(t *testing.T) {
	ctx := context.Background()
	repository, _ := newPostgresRepository(t)

	require.NoError(t, repository.Save(ctx, standardContract(t, "full")))
	require.NoError(t, repository.Save(ctx, newContract(t, "sized", contract.MustVariant("size", "sm"))))
	require.NoError(t, repository.Save(ctx, newContract(t, "empty")))

	tests := []struct {
		name   string
		filter contract.Filter
		want   []string
	}{
		{"no_filter", contract.Filter{}, []string{"empty", "full", "sized"}},
		{"size", contract.Filter{VariantTypes: []contract.VariantType{contract.VariantSize}}, []string{"full", "sized"}},
		{"size_and_tone", contract.Filter{VariantTypes: []contract.VariantType{contract.VariantSize, contract.VariantTone}}, []string{"full"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total, err := repository.List(ctx, tt.filter, 10, 0)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), total)
			assert.Equal(t, tt.want, names(page))
		})
	}

	tone, err := repository.FindByVariantType(ctx, contract.VariantTone)
	require.NoError(t, err)
	assert.Equal(t, []string{"full"}, names(tone))
}

/*
TestPostgresRepository_Delete removes the row once.
*/
func TestPostgresRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repository, _ := newPostgresRepository(t)

	stored := newContract(t, "doomed")
	require.NoError(t, repository.Save(ctx, stored))

	exists, err := repository.Exists(ctx, stored.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repository.Delete(ctx, stored.ID()))
	assert.ErrorIs(t, repository.Delete(ctx, stored.ID()), contract.ErrNotFound)
}
