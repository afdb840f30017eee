package app

import (
	"context"
	"errors"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

var (
	// ErrMissingProduct indicates that the request did not name a product.
	ErrMissingProduct = errors.New("productId is required")
	// ErrInvalidQuantity indicates a zero or negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartService applies cart operations against the server-side cart
// repository. Carts are keyed by the session id issued in the cart cookie;
// an empty session id reads as an empty cart.
type CartService struct {
	carts domain.CartRepository
}

// NewCartService creates a CartService backed by the given repository.
func NewCartService(carts domain.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// Get returns the cart for the session.
func (s *CartService) Get(ctx context.Context, sessionID string) (domain.CartState, error) {
	if sessionID == "" {
		return domain.CartState{}, nil
	}
	state, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = domain.CartState{}
	}
	return state, nil
}

// Add merges the quantity into the session's cart and persists the result.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, quantity int) (domain.CartState, error) {
	if productID == "" {
		return nil, ErrMissingProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state = state.Add(productID, quantity)
	if err := s.carts.SaveCart(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Remove drops the product's line item from the session's cart. Removing a
// product that is not in the cart is a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (domain.CartState, error) {
	if productID == "" {
		return nil, ErrMissingProduct
	}

	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !state.Contains(productID) {
		return state, nil
	}
	state = state.Remove(productID)
	if err := s.carts.SaveCart(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.carts.ClearCart(ctx, sessionID)
}
