package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/returndesk/internal/model"
)

func (r *Repository) GetOrder(ctx context.Context, number string) (*model.Order, error) {
	var order model.Order

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		query := `SELECT number, customer_id, order_date, delivery_date, payment_status, vip_level, total_amount
		FROM orders WHERE number = $1`

		err := db.QueryRowContext(ctx, query, number).Scan(
			&order.Number,
			&order.CustomerID,
			&order.OrderDate,
			&order.DeliveryDate,
			&order.PaymentStatus,
			&order.VIPTier,
			&order.TotalAmount,
		)
		if err != nil {
			return err
		}

		items, err := getOrderItems(ctx, db, number)
		if err != nil {
			return err
		}
		order.Items = items

		return nil
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func getOrderItems(ctx context.Context, db *sql.DB, number string) ([]model.LineItem, error) {
	query := `SELECT name, category, price, tags_removed, worn, used, seal_intact
	FROM order_items WHERE order_number = $1 ORDER BY position`

	rows, err := db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LineItem, 0)
	for rows.Next() {
		var (
			item model.LineItem
			seal sql.NullBool
		)
		if err := rows.Scan(
			&item.Name,
			&item.Category,
			&item.Price,
			&item.TagsRemoved,
			&item.Worn,
			&item.Used,
			&seal,
		); err != nil {
			return nil, err
		}

		if seal.Valid {
			intact := seal.Bool
			item.SealIntact = &intact
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// Quantity - возвращает остаток размера, model.ErrItemNotFound если у товара нет строк inventory
func (r *Repository) Quantity(ctx context.Context, itemID, size string) (int, error) {
	var quantity, sizes int

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		query := `SELECT COALESCE(MAX(quantity) FILTER (WHERE size = $2), 0), COUNT(*)
		FROM inventory WHERE item_id = $1`

		return db.QueryRowContext(ctx, query, itemID, size).Scan(&quantity, &sizes)
	})
	if err != nil {
		return 0, err
	}

	if sizes == 0 {
		return 0, model.ErrItemNotFound
	}

	return quantity, nil
}

func (r *Repository) listInventory(ctx context.Context) ([]syncJob, error) {
	result := make([]syncJob, 0)

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx, `SELECT item_id, size FROM inventory ORDER BY item_id, size`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row syncJob
			if err := rows.Scan(&row.itemID, &row.size); err != nil {
				return err
			}
			result = append(result, row)
		}

		return rows.Err()
	})

	return result, err
}

// SetStock - записывает остаток размера в таблицу inventory
func (r *Repository) SetStock(ctx context.Context, itemID, size string, quantity int) error {
	return r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`UPDATE inventory SET quantity = $1, updated_at = now() WHERE item_id = $2 AND size = $3`,
			quantity,
			itemID,
			size,
		)
		return err
	})
}
