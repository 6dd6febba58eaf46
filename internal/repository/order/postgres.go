package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"apotek-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Append(ctx context.Context, order domain.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("order repo: marshal lines: %w", err)
	}

	const q = `
INSERT INTO orders (id, customer_name, area, delivery_option, notes, payment_method, lines, subtotal, delivery_fee, total, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err = r.pool.Exec(ctx, q,
		order.ID,
		order.Customer.Name,
		order.Customer.Area,
		order.Customer.DeliveryTime,
		order.Customer.Notes,
		order.Customer.PaymentMethod,
		lines,
		order.Subtotal,
		order.DeliveryFee,
		order.Total,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("order repo: append id=%s error=%v", order.ID, err)
		return err
	}
	r.logger.Printf("order repo: appended id=%s total=%d", order.ID, order.Total)
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, customer_name, area, delivery_option, notes, payment_method, lines, subtotal, delivery_fee, total, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var lines []byte
		if err := rows.Scan(
			&o.ID,
			&o.Customer.Name,
			&o.Customer.Area,
			&o.Customer.DeliveryTime,
			&o.Customer.Notes,
			&o.Customer.PaymentMethod,
			&lines,
			&o.Subtotal,
			&o.DeliveryFee,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, fmt.Errorf("order repo: unmarshal lines for %s: %w", o.ID, err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
