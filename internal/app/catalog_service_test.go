package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

type mockCatalogRepo struct {
	categoriesFn func(ctx context.Context) ([]domain.CategorySummary, error)
	bannersFn    func(ctx context.Context) ([]domain.Banner, error)
	productFn    func(ctx context.Context, id string) (*domain.Product, error)
	imagesFn     func(ctx context.Context, productID string) ([]domain.ProductImage, error)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	if m.categoriesFn != nil {
		return m.categoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	if m.bannersFn != nil {
		return m.bannersFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.productFn != nil {
		return m.productFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepo) ListProductImages(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	if m.imagesFn != nil {
		return m.imagesFn(ctx, productID)
	}
	return nil, nil
}

func TestCategoriesDropEmpty(t *testing.T) {
	repo := &mockCatalogRepo{
		categoriesFn: func(_ context.Context) ([]domain.CategorySummary, error) {
			return []domain.CategorySummary{
				{Category: domain.Category{ID: "c1", Name: "Bangles"}, ProductCount: 3},
				{Category: domain.Category{ID: "c2", Name: "Empty"}, ProductCount: 0},
				{Category: domain.Category{ID: "c3", Name: "Pendants"}, ProductCount: 1},
			}, nil
		},
	}
	svc := app.NewCatalogService(repo)

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c3" {
		t.Fatalf("expected empty category dropped, got %v", got)
	}
}

func TestBannersDegradeOnMissingTable(t *testing.T) {
	repo := &mockCatalogRepo{
		bannersFn: func(_ context.Context) ([]domain.Banner, error) {
			return nil, domain.ErrTableMissing
		},
	}
	svc := app.NewCatalogService(repo)

	res := svc.Banners(context.Background())
	if res.Banners == nil || len(res.Banners) != 0 {
		t.Fatalf("expected empty banner list, got %v", res.Banners)
	}
	if res.Note == "" {
		t.Fatal("expected note for unmigrated table")
	}
	if res.Err != "" {
		t.Fatalf("unexpected error field: %q", res.Err)
	}
}

func TestBannersDegradeOnOtherErrors(t *testing.T) {
	repo := &mockCatalogRepo{
		bannersFn: func(_ context.Context) ([]domain.Banner, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := app.NewCatalogService(repo)

	res := svc.Banners(context.Background())
	if len(res.Banners) != 0 {
		t.Fatalf("expected empty banner list, got %v", res.Banners)
	}
	if res.Err != "connection refused" {
		t.Fatalf("expected error message attached, got %q", res.Err)
	}
}

func TestGetProductPriceNormalization(t *testing.T) {
	tests := []struct {
		cents int64
		want  int64
	}{
		{12999, 130},
		{12949, 129},
		{100, 1},
		{49, 0},
		{50, 1},
	}
	for _, tc := range tests {
		repo := &mockCatalogRepo{
			productFn: func(_ context.Context, id string) (*domain.Product, error) {
				return &domain.Product{ID: id, PriceCents: tc.cents, CreatedAt: time.Now()}, nil
			},
		}
		svc := app.NewCatalogService(repo)
		detail, err := svc.GetProduct(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Price != tc.want {
			t.Errorf("price for %d cents = %d, want %d", tc.cents, detail.Price, tc.want)
		}
		if detail.Images == nil {
			t.Error("expected non-nil images slice")
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := app.NewCatalogService(&mockCatalogRepo{})
	if _, err := svc.GetProduct(context.Background(), "missing"); !errors.Is(err, app.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
