package postgres

import (
	"context"
	"database/sql"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

// ListCategories returns every category with its product count and newest
// product, ordered by name ascending.
func (d *DB) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT c.id, c.name, c.image,
		       (SELECT COUNT(*) FROM products WHERE category_id = c.id),
		       p.id, p.name, p.description, p.image, p.price_cents, p.created_at
		FROM categories c
		LEFT JOIN LATERAL (
			SELECT id, name, description, image, price_cents, created_at
			FROM products
			WHERE category_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) p ON TRUE
		ORDER BY c.name ASC;`)
	if err != nil {
		return nil, mapTableMissing(err)
	}
	defer rows.Close()

	var out []domain.CategorySummary
	for rows.Next() {
		var c domain.CategorySummary
		var pID, pName, pDesc, pImage sql.NullString
		var pPrice sql.NullInt64
		var pCreated sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.ProductCount,
			&pID, &pName, &pDesc, &pImage, &pPrice, &pCreated); err != nil {
			return nil, err
		}
		if pID.Valid {
			c.FirstProduct = &domain.Product{
				ID:          pID.String,
				CategoryID:  c.ID,
				Name:        pName.String,
				Description: pDesc.String,
				Image:       pImage.String,
				PriceCents:  pPrice.Int64,
				CreatedAt:   pCreated.Time,
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListActiveBanners returns active banners ordered by their sort field.
// A missing banners table surfaces as domain.ErrTableMissing.
func (d *DB) ListActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, title, image, link, sort_order, active FROM banners WHERE active ORDER BY sort_order ASC;")
	if err != nil {
		return nil, mapTableMissing(err)
	}
	defer rows.Close()

	var out []domain.Banner
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Image, &b.Link, &b.SortOrder, &b.Active); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetProduct retrieves a product by id, or nil when absent.
func (d *DB) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, category_id, name, description, image, price_cents, created_at FROM products WHERE id = $1",
		id,
	).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Image, &p.PriceCents, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProductImages returns the gallery images for a product in sort order.
func (d *DB) ListProductImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, product_id, url, sort_order FROM product_images WHERE product_id = $1 ORDER BY sort_order ASC",
		productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProductImage
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
