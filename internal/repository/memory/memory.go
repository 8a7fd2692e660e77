package memory

import (
	"context"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
)

// Repository serves orders and inventory from static tables. It stands in for
// the order management system and is read only after construction.
type Repository struct {
	orders    map[string]model.Order
	inventory map[string]map[string]int
}

func New(orders []model.Order, inventory map[string]map[string]int) *Repository {
	r := &Repository{
		orders:    make(map[string]model.Order, len(orders)),
		inventory: make(map[string]map[string]int, len(inventory)),
	}

	for _, o := range orders {
		r.orders[o.Number] = o
	}
	for itemID, sizes := range inventory {
		copied := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			copied[size] = qty
		}
		r.inventory[itemID] = copied
	}

	return r
}

// NewSeeded returns a repository holding the demo orders and inventory.
func NewSeeded() *Repository {
	return New(SeedOrders(), SeedInventory())
}

func (r *Repository) GetOrder(_ context.Context, number string) (*model.Order, error) {
	order, ok := r.orders[number]
	if !ok {
		return nil, model.ErrOrderNotFound
	}

	items := make([]model.LineItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	return &order, nil
}

func (r *Repository) Quantity(_ context.Context, itemID, size string) (int, error) {
	sizes, ok := r.inventory[itemID]
	if !ok {
		return 0, model.ErrItemNotFound
	}

	return sizes[size], nil
}

func (r *Repository) Ping() error {
	return nil
}

func (r *Repository) Shutdown() error {
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, seoul)
}

var seoul = time.FixedZone("KST", 9*60*60)
