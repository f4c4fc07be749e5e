package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	pkgdb "github.com/Skotchmaster/product_catalog/pkg/db"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(db, models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repo.New(db)
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }
