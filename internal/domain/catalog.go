package domain

import (
	"context"
	"errors"
	"time"
)

// ErrTableMissing reports that a storage table backing a query has not been
// created yet. Decorative listings (banners) degrade to an empty result on
// this condition instead of failing the page.
var ErrTableMissing = errors.New("table does not exist")

// Category groups products for storefront navigation.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Product is a single catalog entry. PriceCents stores the price in minor
// units; display prices divide by 100.
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductImage is one gallery image attached to a product.
type ProductImage struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
}

// Banner is a promotional slide shown on the storefront home page.
type Banner struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Link      string `json:"link,omitempty"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `json:"active"`
}

// CategorySummary is a category joined with its newest product and total
// product count, shaped for the category listing endpoint.
type CategorySummary struct {
	Category
	ProductCount int      `json:"productCount"`
	FirstProduct *Product `json:"firstProduct,omitempty"`
}

// CatalogRepository is the port for catalog persistence.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]CategorySummary, error)
	ListActiveBanners(ctx context.Context) ([]Banner, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProductImages(ctx context.Context, productID string) ([]ProductImage, error)
}
