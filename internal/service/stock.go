package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ibeloyar/returndesk/internal/model"
)

// InventoryStockProvider derives the stock status from inventory quantities.
type InventoryStockProvider struct {
	inventory         InventoryRepository
	lowStockThreshold int
}

func NewInventoryStockProvider(inventory InventoryRepository, lowStockThreshold int) *InventoryStockProvider {
	return &InventoryStockProvider{
		inventory:         inventory,
		lowStockThreshold: lowStockThreshold,
	}
}

func (p *InventoryStockProvider) StockStatus(ctx context.Context, itemID string, option model.Option) (model.StockStatus, error) {
	qty, err := p.inventory.Quantity(ctx, itemID, option.Size)
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			return model.StockOutOfStock, nil
		}
		return "", fmt.Errorf("quantity of %s/%s: %w", itemID, option.Size, err)
	}

	switch {
	case qty <= 0:
		return model.StockOutOfStock, nil
	case qty <= p.lowStockThreshold:
		return model.StockLowStock, nil
	default:
		return model.StockInStock, nil
	}
}

// RandomStockProvider samples a stock status. It stands in for an inventory
// service in demo deployments.
type RandomStockProvider struct {
	rnd Randomizer
}

func NewRandomStockProvider(rnd Randomizer) *RandomStockProvider {
	return &RandomStockProvider{rnd: rnd}
}

var stockStatuses = []model.StockStatus{
	model.StockInStock,
	model.StockLowStock,
	model.StockOutOfStock,
}

func (p *RandomStockProvider) StockStatus(context.Context, string, model.Option) (model.StockStatus, error) {
	return stockStatuses[p.rnd.Intn(len(stockStatuses))], nil
}
