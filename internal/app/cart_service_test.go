package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/app"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

type mockCartRepo struct {
	getFn   func(ctx context.Context, sessionID string) (domain.CartState, error)
	saveFn  func(ctx context.Context, sessionID string, state domain.CartState) error
	clearFn func(ctx context.Context, sessionID string) error

	saves int
}

func (m *mockCartRepo) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	if m.getFn != nil {
		return m.getFn(ctx, sessionID)
	}
	return domain.CartState{}, nil
}

func (m *mockCartRepo) SaveCart(ctx context.Context, sessionID string, state domain.CartState) error {
	m.saves++
	if m.saveFn != nil {
		return m.saveFn(ctx, sessionID, state)
	}
	return nil
}

func (m *mockCartRepo) ClearCart(ctx context.Context, sessionID string) error {
	if m.clearFn != nil {
		return m.clearFn(ctx, sessionID)
	}
	return nil
}

func TestCartServiceAdd(t *testing.T) {
	repo := &mockCartRepo{
		getFn: func(_ context.Context, _ string) (domain.CartState, error) {
			return domain.CartState{{ProductID: "p1", Quantity: 1}}, nil
		},
	}
	svc := app.NewCartService(repo)

	state, err := svc.Add(context.Background(), "sid", "p1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.CartState{{ProductID: "p1", Quantity: 3}}
	if !reflect.DeepEqual(state, want) {
		t.Fatalf("got %v, want %v", state, want)
	}
	if repo.saves != 1 {
		t.Fatalf("expected 1 save, got %d", repo.saves)
	}
}

func TestCartServiceAddValidation(t *testing.T) {
	svc := app.NewCartService(&mockCartRepo{})

	if _, err := svc.Add(context.Background(), "sid", "", 1); !errors.Is(err, app.ErrMissingProduct) {
		t.Fatalf("expected ErrMissingProduct, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "sid", "p1", 0); !errors.Is(err, app.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartServiceRemoveAbsentSkipsSave(t *testing.T) {
	repo := &mockCartRepo{
		getFn: func(_ context.Context, _ string) (domain.CartState, error) {
			return domain.CartState{{ProductID: "p1", Quantity: 1}}, nil
		},
	}
	svc := app.NewCartService(repo)

	state, err := svc.Remove(context.Background(), "sid", "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state) != 1 {
		t.Fatalf("state changed on absent remove: %v", state)
	}
	if repo.saves != 0 {
		t.Fatalf("expected no save on no-op remove, got %d", repo.saves)
	}
}

func TestCartServiceGetEmptySession(t *testing.T) {
	repo := &mockCartRepo{
		getFn: func(_ context.Context, _ string) (domain.CartState, error) {
			t.Fatal("repository should not be queried for an empty session id")
			return nil, nil
		},
	}
	svc := app.NewCartService(repo)

	state, err := svc.Get(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state) != 0 {
		t.Fatalf("expected empty cart, got %v", state)
	}
}
