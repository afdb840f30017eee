package domain

import "context"

// CartItem is one distinct product's quantity in a cart. A cart holds at
// most one item per product ID.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartState is the ordered list of items in one cart. Insertion order is
// first-add order. Mutation goes through Add/Remove/Clear, which return a
// fresh slice and never alias the receiver.
type CartState []CartItem

// Add merges quantity into an existing line item, preserving its position,
// or appends a new item at the end.
func (s CartState) Add(productID string, quantity int) CartState {
	out := make(CartState, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, CartItem{ProductID: productID, Quantity: quantity})
}

// Remove filters out the item with the given product ID. Removing an absent
// ID leaves the state unchanged.
func (s CartState) Remove(productID string) CartState {
	out := make(CartState, 0, len(s))
	for _, it := range s {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Clear returns the empty cart.
func (s CartState) Clear() CartState {
	return CartState{}
}

// Contains reports whether the cart holds an item for the product ID.
func (s CartState) Contains(productID string) bool {
	for _, it := range s {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// CartRepository is the port for server-side cart persistence, keyed by the
// cart session ID issued in the cart cookie.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (CartState, error)
	SaveCart(ctx context.Context, sessionID string, state CartState) error
	ClearCart(ctx context.Context, sessionID string) error
}
