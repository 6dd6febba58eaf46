package product

import (
	"context"
	"errors"
	"io"
	"log"

	"apotek-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
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

const productColumns = `
p.id::text, p.name, p.price, p.discount_price, p.stock, p.unit, COALESCE(p.description, ''),
p.is_new_arrival, COALESCE(p.media_url, ''), p.rating, p.review_count, p.created_at,
COALESCE(array_agg(c.name ORDER BY c.name) FILTER (WHERE c.name IS NOT NULL), '{}')
`

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, int, error) {
	const countQuery = `
SELECT COUNT(*)
FROM products p
WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR EXISTS (
		SELECT 1
		FROM product_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id = p.id AND c.name = $2
  ))
`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, f.Search, f.Category).Scan(&total); err != nil {
		r.logger.Printf("product repo: count search=%q category=%q error=%v", f.Search, f.Category, err)
		return nil, 0, err
	}

	listQuery := `
SELECT ` + productColumns + `
FROM products p
LEFT JOIN product_categories pc ON pc.product_id = p.id
LEFT JOIN categories c ON c.id = pc.category_id
WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR EXISTS (
		SELECT 1
		FROM product_categories pc2
		JOIN categories c2 ON c2.id = pc2.category_id
		WHERE pc2.product_id = p.id AND c2.name = $2
  ))
GROUP BY p.id
ORDER BY p.created_at DESC
LIMIT $3 OFFSET $4
`
	offset := (f.Page - 1) * f.PageSize
	rows, err := r.pool.Query(ctx, listQuery, f.Search, f.Category, f.PageSize, offset)
	if err != nil {
		r.logger.Printf("product repo: list search=%q category=%q error=%v", f.Search, f.Category, err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM products p
LEFT JOIN product_categories pc ON pc.product_id = p.id
LEFT JOIN categories c ON c.id = pc.category_id
WHERE p.id::text = $1
GROUP BY p.id
`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO products (name, price, discount_price, stock, unit, description, is_new_arrival, media_url, rating, review_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)
RETURNING id::text, created_at
`
	res := p
	err = tx.QueryRow(ctx, q,
		p.Name, p.Price, p.DiscountPrice, p.Stock, p.Unit,
		p.Description, p.IsNewArrival, p.MediaURL, p.Rating, p.ReviewCount,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}

	if err := linkCategories(ctx, tx, res.ID, p.Categories); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%q", res.ID, res.Name)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE products
SET name = $1,
    price = $2,
    discount_price = $3,
    stock = $4,
    unit = $5,
    description = $6,
    is_new_arrival = $7,
    media_url = NULLIF($8, ''),
    rating = $9,
    review_count = $10
WHERE id::text = $11
RETURNING created_at
`
	res := p
	err = tx.QueryRow(ctx, q,
		p.Name, p.Price, p.DiscountPrice, p.Stock, p.Unit,
		p.Description, p.IsNewArrival, p.MediaURL, p.Rating, p.ReviewCount, p.ID,
	).Scan(&res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
		return nil, err
	}
	if err := linkCategories(ctx, tx, p.ID, p.Categories); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id::text = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// linkCategories attaches the product to each named category, creating
// categories that do not exist yet.
func linkCategories(ctx context.Context, tx pgx.Tx, productID string, names []string) error {
	for _, name := range names {
		var categoryID string
		err := tx.QueryRow(ctx, `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`, name).Scan(&categoryID)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO product_categories (product_id, category_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, productID, categoryID); err != nil {
			return err
		}
	}
	return nil
}

func scanProduct(rows pgx.Rows) (domain.Product, error) {
	var p domain.Product
	err := rows.Scan(
		&p.ID, &p.Name, &p.Price, &p.DiscountPrice, &p.Stock, &p.Unit, &p.Description,
		&p.IsNewArrival, &p.MediaURL, &p.Rating, &p.ReviewCount, &p.CreatedAt,
		&p.Categories,
	)
	return p, err
}
