package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGSource loads the catalogue from the products table.
type PGSource struct {
	DB *sql.DB
}

// Load reads all products ordered by their catalogue position. Rows are
// materialized into passthrough Product maps so the HTTP schema matches the
// file source.
func (s *PGSource) Load(ctx context.Context) ([]Product, error) {
	const query = `
SELECT id, name, brand, category, price_cents, concern_tags, attributes
FROM products
ORDER BY position, created_at`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0, 16)
	for rows.Next() {
		var (
			id, name, brand, category string
			priceCents                int
			tagsRaw, attrsRaw         []byte
		)
		if err := rows.Scan(&id, &name, &brand, &category, &priceCents, &tagsRaw, &attrsRaw); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}

		var tags []string
		if len(tagsRaw) > 0 {
			if err := json.Unmarshal(tagsRaw, &tags); err != nil {
				return nil, fmt.Errorf("decode concern_tags for %s: %w", id, err)
			}
		}

		product := Product{
			"id":           id,
			"name":         name,
			"brand":        brand,
			"category":     category,
			"price_cents":  priceCents,
			"concern_tags": tags,
		}
		if len(attrsRaw) > 0 {
			var attrs map[string]any
			if err := json.Unmarshal(attrsRaw, &attrs); err != nil {
				return nil, fmt.Errorf("decode attributes for %s: %w", id, err)
			}
			for k, v := range attrs {
				if _, exists := product[k]; !exists {
					product[k] = v
				}
			}
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
