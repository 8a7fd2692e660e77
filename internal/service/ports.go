package service

import (
	"context"

	"github.com/ibeloyar/returndesk/internal/model"
)

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks github.com/ibeloyar/returndesk/internal/service OrderRepository,InventoryRepository,StockStatusProvider

type OrderRepository interface {
	// GetOrder returns model.ErrOrderNotFound when the order does not exist
	GetOrder(ctx context.Context, number string) (*model.Order, error)
}

type InventoryRepository interface {
	// Quantity returns model.ErrItemNotFound when the item is unknown;
	// an unknown size of a known item has zero quantity
	Quantity(ctx context.Context, itemID, size string) (int, error)
}

type StockStatusProvider interface {
	StockStatus(ctx context.Context, itemID string, option model.Option) (model.StockStatus, error)
}

// Recorder receives resolver outcomes, e.g. for metrics.
type Recorder interface {
	ObserveEligibility(eligible bool, code model.ErrorCode)
	ObserveReturn(category model.Category, autoApproved bool)
	ObserveExchange(status model.StockStatus)
}

type Randomizer interface {
	Intn(n int) int
}
