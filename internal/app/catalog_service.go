package app

import (
	"context"
	"errors"
	"math"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

// ErrProductNotFound indicates that no product exists for the requested id.
var ErrProductNotFound = errors.New("product not found")

// CatalogService serves read-only storefront catalog queries.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Categories returns the category listing for navigation, ordered by name.
// Categories without any product are dropped.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	all, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CategorySummary, 0, len(all))
	for _, c := range all {
		if c.ProductCount == 0 {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// BannerResult is the outcome of a banner query. Banner data is decorative,
// so repository failures degrade to an empty slide list with a diagnostic
// instead of an error.
type BannerResult struct {
	Banners []domain.Banner
	// Note is set when the banners table has not been migrated yet.
	Note string
	// Err carries any other repository failure, for visibility only.
	Err string
}

// Banners returns the active banners in sort order. It never fails: page
// rendering must survive an unmigrated or unavailable banners table.
func (s *CatalogService) Banners(ctx context.Context) BannerResult {
	banners, err := s.repo.ListActiveBanners(ctx)
	if errors.Is(err, domain.ErrTableMissing) {
		return BannerResult{Banners: []domain.Banner{}, Note: "banners table not migrated"}
	}
	if err != nil {
		return BannerResult{Banners: []domain.Banner{}, Err: err.Error()}
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return BannerResult{Banners: banners}
}

// ProductDetail is a product joined with its gallery images and the display
// price derived from minor units.
type ProductDetail struct {
	domain.Product
	Images []domain.ProductImage `json:"images"`
	// Price is the display price in major units, rounded.
	Price int64 `json:"price"`
}

// GetProduct returns the product detail for the given id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	images, err := s.repo.ListProductImages(ctx, id)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []domain.ProductImage{}
	}

	return &ProductDetail{
		Product: *product,
		Images:  images,
		Price:   int64(math.Round(float64(product.PriceCents) / 100)),
	}, nil
}
