package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	config "github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()

	return &config.Config{
		Storage: &config.StorageCfg{Driver: driver, KeyPrefix: "bakery"},
		Http:    &config.HTTPConfig{Port: "0", SwaggerHost: "localhost:8080"},
		Grpc:    &config.GRPCConfig{Port: "0", NetworkMode: "tcp"},
		Bolt: &config.BoltCfg{
			Path:        filepath.Join(t.TempDir(), "data", "bakery.db"),
			Bucket:      "state",
			OpenTimeout: time.Second,
		},
		Admin: &config.AdminCfg{Username: "admin", Password: "123456"},
	}
}

func TestNewApp_Memory(t *testing.T) {
	a, err := NewApp(testConfig(t, config.StorageMemory), logger.NewDiscardLogger())
	require.NoError(t, err)
	defer a.closer.Close(context.Background())

	assert.Len(t, a.Catalog.ListAll(), 8)
	assert.Empty(t, a.Cart.Items())
	assert.Equal(t, domain.ViewHome, a.Navigator.Current())
}

func TestNewApp_BoltPersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StorageBolt)

	first, err := NewApp(cfg, logger.NewDiscardLogger())
	require.NoError(t, err)

	product, ok := first.Catalog.Get("1")
	require.True(t, ok)
	require.NoError(t, first.Cart.Add(ctx, product))
	require.NoError(t, first.Catalog.Delete(ctx, "8"))
	require.NoError(t, first.closer.Close(ctx))

	second, err := NewApp(cfg, logger.NewDiscardLogger())
	require.NoError(t, err)
	defer second.closer.Close(ctx)

	assert.Len(t, second.Catalog.ListAll(), 7)
	items := second.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.False(t, second.Navigator.IsAdmin())
}

func TestNewApp_EmptiedCatalogStaysEmptyAfterRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StorageBolt)

	first, err := NewApp(cfg, logger.NewDiscardLogger())
	require.NoError(t, err)
	for _, p := range first.Catalog.ListAll() {
		require.NoError(t, first.Catalog.Delete(ctx, p.ID))
	}
	require.Empty(t, first.Catalog.ListAll())
	require.NoError(t, first.closer.Close(ctx))

	second, err := NewApp(cfg, logger.NewDiscardLogger())
	require.NoError(t, err)
	defer second.closer.Close(ctx)

	assert.Empty(t, second.Catalog.ListAll())
}

func TestNewApp_UnknownDriver(t *testing.T) {
	_, err := NewApp(testConfig(t, "etcd"), logger.NewDiscardLogger())
	assert.ErrorIs(t, err, e.ErrUnknownStorageDriver)
}
