package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name          string
	Price         int64
	DiscountPrice int64
	Stock         int
	Unit          string
	Description   string
	Categories    []string
}

// Apply inserts demo catalog data for manual testing. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Paracetamol 500mg",
			Price:       10000,
			Stock:       50,
			Unit:        "strip",
			Description: "Pereda demam dan nyeri ringan",
			Categories:  []string{"Obat"},
		},
		{
			Name:          "Vitamin C 1000mg",
			Price:         30000,
			DiscountPrice: 25000,
			Stock:         30,
			Unit:          "botol",
			Description:   "Suplemen daya tahan tubuh",
			Categories:    []string{"Vitamin"},
		},
		{
			Name:        "Minyak Kayu Putih 60ml",
			Price:       22000,
			Stock:       25,
			Unit:        "botol",
			Description: "Menghangatkan badan, meredakan perut kembung",
			Categories:  []string{"Perawatan"},
		},
		{
			Name:        "Madu Hutan 250ml",
			Price:       45000,
			Stock:       15,
			Unit:        "botol",
			Description: "Madu murni dari hutan Trenggalek",
			Categories:  []string{"Herbal", "Vitamin"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, price, discount_price, stock, unit, description)
VALUES ($1, $2, NULLIF($3, 0), $4, $5, $6)
ON CONFLICT (name) DO UPDATE
SET price = EXCLUDED.price,
    discount_price = EXCLUDED.discount_price,
    stock = EXCLUDED.stock,
    unit = EXCLUDED.unit,
    description = EXCLUDED.description
RETURNING id::text
`
	var productID string
	if err := pool.QueryRow(ctx, q, p.Name, p.Price, p.DiscountPrice, p.Stock, p.Unit, p.Description).Scan(&productID); err != nil {
		return err
	}

	for _, name := range p.Categories {
		var categoryID string
		err := pool.QueryRow(ctx, `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`, name).Scan(&categoryID)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
INSERT INTO product_categories (product_id, category_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, productID, categoryID); err != nil {
			return err
		}
	}
	return nil
}
