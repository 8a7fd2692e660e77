package app

import (
	"context"
	"testing"

	"github.com/ibeloyar/returndesk/internal/config"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/internal/repository/inventoryapi"
	"github.com/ibeloyar/returndesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenStorage_Memory(t *testing.T) {
	st, err := openStorage(context.Background(), config.Config{}, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer st.Shutdown()

	assert.Nil(t, st.pg)
	assert.Nil(t, st.sink)
	assert.NoError(t, st.Ping())

	order, err := st.orders.GetOrder(context.Background(), "KS-2024-001234")
	require.NoError(t, err)
	assert.Equal(t, "customer_ecommerce_001", order.CustomerID)

	quantity, err := st.inventory.Quantity(context.Background(), "KTOP001", "S")
	require.NoError(t, err)
	assert.Equal(t, 12, quantity)
}

func TestStockProvider(t *testing.T) {
	lg := zap.NewNop().Sugar()

	st, err := openStorage(context.Background(), config.Config{}, lg)
	require.NoError(t, err)
	defer st.Shutdown()

	tests := []struct {
		name string
		cfg  config.Config
		want any
	}{
		{
			name: "inventory service",
			cfg:  config.Config{InventoryServiceAddress: "inventory:8081", LowStockThreshold: 3},
			want: &inventoryapi.Client{},
		},
		{
			name: "random",
			cfg:  config.Config{RandomStock: true},
			want: &service.RandomStockProvider{},
		},
		{
			name: "local inventory",
			cfg:  config.Config{LowStockThreshold: 3},
			want: &service.InventoryStockProvider{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, stockProvider(tt.cfg, st, lg))
		})
	}
}

func TestStockProvider_LocalInventoryStatus(t *testing.T) {
	lg := zap.NewNop().Sugar()

	st, err := openStorage(context.Background(), config.Config{}, lg)
	require.NoError(t, err)
	defer st.Shutdown()

	provider := stockProvider(config.Config{LowStockThreshold: 3}, st, lg)

	status, err := provider.StockStatus(context.Background(), "KTOP001", model.Option{Size: "L"})
	require.NoError(t, err)
	assert.Equal(t, model.StockLowStock, status)
}

func TestStockProvider_SyncSkippedWithoutPostgres(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	lg := zap.New(core).Sugar()

	st, err := openStorage(context.Background(), config.Config{}, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer st.Shutdown()

	provider := stockProvider(config.Config{InventoryServiceAddress: "inventory:8081", LowStockThreshold: 3}, st, lg)

	assert.IsType(t, &inventoryapi.Client{}, provider)
	assert.Equal(t, 1, logs.FilterMessageSnippet("inventory sync skipped").Len())
}
