package redis

import (
	"context"
	"fmt"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "stock:"

// quantityScript returns -1 when the item hash does not exist, otherwise the
// quantity of the size (0 for an unknown size).
var quantityScript = redis.NewScript(`
local key = KEYS[1]
local size = ARGV[1]

if redis.call('EXISTS', key) == 0 then
	return -1
end

local qty = redis.call('HGET', key, size)
if not qty then
	return 0
end

return tonumber(qty)
`)

// Repository keeps inventory as one hash per item: stock:{item_id} -> size -> quantity.
type Repository struct {
	client *redis.Client
}

func New(address string) (*Repository, error) {
	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", address, err)
	}

	return &Repository{client: client}, nil
}

func NewWithClient(client *redis.Client) *Repository {
	return &Repository{client: client}
}

func stockKey(itemID string) string {
	return stockKeyPrefix + itemID
}

func (r *Repository) Quantity(ctx context.Context, itemID, size string) (int, error) {
	qty, err := quantityScript.Run(ctx, r.client, []string{stockKey(itemID)}, size).Int()
	if err != nil {
		return 0, fmt.Errorf("redis quantity %s/%s: %w", itemID, size, err)
	}

	if qty < 0 {
		return 0, model.ErrItemNotFound
	}

	return qty, nil
}

// SetStock overwrites the quantity of one size; the inventory sync writes
// through it when Redis holds the inventory.
func (r *Repository) SetStock(ctx context.Context, itemID, size string, quantity int) error {
	return r.client.HSet(ctx, stockKey(itemID), size, quantity).Err()
}

// Seed writes the given quantities without overwriting sizes that already
// have a value.
func (r *Repository) Seed(ctx context.Context, inventory map[string]map[string]int) error {
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for itemID, sizes := range inventory {
			for size, qty := range sizes {
				pipe.HSetNX(ctx, stockKey(itemID), size, qty)
			}
		}
		return nil
	})

	return err
}

func (r *Repository) Ping() error {
	return r.client.Ping(context.Background()).Err()
}

func (r *Repository) Shutdown() error {
	return r.client.Close()
}
