package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
)

const (
	pgForeignKeyViolation = "23503"

	orderLineColumns = `o.id, o.user_id, o.client, o.status, o.date_entry, o.date_processed,
		p.id, p.name, p.price_amount::text, p.price_currency, p.image, p.type,
		op.quantity`
)

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders o
		JOIN order_products op ON op.order_id = o.id
		JOIN products p ON p.id = op.product_id
		ORDER BY o.id, op.id`, orderLineColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	orders, err := collectOrderRows(rows)
	if err != nil {
		return nil, fmt.Errorf("collectOrderRows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	var o domain.Order

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders o
		JOIN order_products op ON op.order_id = o.id
		JOIN products p ON p.id = op.product_id
		WHERE o.id = $1
		ORDER BY op.id`, orderLineColumns)

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return o, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	orders, err := collectOrderRows(rows)
	if err != nil {
		return o, fmt.Errorf("collectOrderRows: %w", err)
	}

	// Every order has at least one line, so zero rows means no order.
	if len(orders) == 0 {
		return o, domain.NotFoundError{Entity: domain.EntityOrder, ID: orderID}
	}

	return orders[0], nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.NewOrder, dateEntry time.Time) (int64, error) {
	if len(order.Lines) == 0 {
		return 0, errors.New("no lines in order")
	}

	orderID, err := withTx(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var orderID int64

		err := tx.QueryRow(ctx,
			`INSERT INTO orders (user_id, client, status, date_entry)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			order.UserID, order.Client, domain.OrderStatusPending, dateEntry,
		).Scan(&orderID)
		if err != nil {
			return 0, fmt.Errorf("insert order: %w", err)
		}

		for _, line := range order.Lines {
			_, err := tx.Exec(ctx,
				`INSERT INTO order_products (order_id, product_id, quantity)
				 VALUES ($1, $2, $3)`,
				orderID, line.ProductID, line.Quantity,
			)
			if err != nil {
				// Rolling back on a missing product keeps the header out too.
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
					return 0, domain.NotFoundError{Entity: domain.EntityProduct, ID: line.ProductID}
				}
				return 0, fmt.Errorf("insert order line: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return 0, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus, processedAt *time.Time) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, date_processed = $3 WHERE id = $1`,
		orderID, status, processedAt,
	)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return domain.NotFoundError{Entity: domain.EntityOrder, ID: orderID}
	}

	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		if _, err := tx.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, orderID); err != nil {
			return struct{}{}, fmt.Errorf("delete order lines: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
		if err != nil {
			return struct{}{}, fmt.Errorf("delete order: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return struct{}{}, domain.NotFoundError{Entity: domain.EntityOrder, ID: orderID}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func collectOrderRows(rows pgx.Rows) ([]domain.Order, error) {
	orderMap := make(map[int64]*domain.Order)
	var orderIDs []int64 // keeps the query's ordering, maps do not

	for rows.Next() {
		var (
			order         domain.Order
			dateProcessed *time.Time
			priceAmount   string
			priceCurrency string
			product       domain.Product
			quantity      int32
		)

		if err := rows.Scan(
			&order.ID, &order.UserID, &order.Client, &order.Status, &order.DateEntry, &dateProcessed,
			&product.ID, &product.Name, &priceAmount, &priceCurrency, &product.Image, &product.Type,
			&quantity,
		); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		price, err := parseMoney(priceAmount, priceCurrency)
		if err != nil {
			return nil, fmt.Errorf("parseMoney: %w", err)
		}
		product.Price = price

		existing, ok := orderMap[order.ID]
		if !ok {
			order.DateProcessed = dateProcessed
			orderMap[order.ID] = &order
			orderIDs = append(orderIDs, order.ID)
			existing = &order
		}

		existing.Lines = append(existing.Lines, domain.OrderLine{
			Product:  product,
			Quantity: quantity,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	orders := make([]domain.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		orders = append(orders, *orderMap[id])
	}

	return orders, nil
}
