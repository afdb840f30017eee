package cart_test

import (
	"reflect"
	"testing"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/cart"
	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  domain.CartState
		action cart.Action
		want   domain.CartState
	}{
		{
			"add to empty",
			domain.CartState{},
			cart.Add{ProductID: "p1", Quantity: 2},
			domain.CartState{{ProductID: "p1", Quantity: 2}},
		},
		{
			"add merges",
			domain.CartState{{ProductID: "p1", Quantity: 2}},
			cart.Add{ProductID: "p1", Quantity: 3},
			domain.CartState{{ProductID: "p1", Quantity: 5}},
		},
		{
			"add with zero quantity ignored",
			domain.CartState{{ProductID: "p1", Quantity: 2}},
			cart.Add{ProductID: "p2", Quantity: 0},
			domain.CartState{{ProductID: "p1", Quantity: 2}},
		},
		{
			"remove",
			domain.CartState{{ProductID: "p1", Quantity: 2}},
			cart.Remove{ProductID: "p1"},
			domain.CartState{},
		},
		{
			"remove absent",
			domain.CartState{{ProductID: "p1", Quantity: 2}},
			cart.Remove{ProductID: "p9"},
			domain.CartState{{ProductID: "p1", Quantity: 2}},
		},
		{
			"clear",
			domain.CartState{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}},
			cart.Clear{},
			domain.CartState{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cart.Reduce(tc.state, tc.action)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStoreDispatchAndSnapshot(t *testing.T) {
	s := cart.NewStore()
	s.Dispatch(cart.Add{ProductID: "p1", Quantity: 1})
	s.Dispatch(cart.Add{ProductID: "p2", Quantity: 2})
	s.Dispatch(cart.Add{ProductID: "p1", Quantity: 4})

	want := domain.CartState{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 2},
	}
	if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Snapshots are copies; mutating one must not leak into the store.
	snap := s.Snapshot()
	snap[0].Quantity = 99
	if got := s.Snapshot(); got[0].Quantity != 5 {
		t.Fatalf("snapshot mutation leaked into store: %v", got)
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := cart.NewStore()

	var seen []domain.CartState
	unsubscribe := s.Subscribe(func(state domain.CartState) {
		seen = append(seen, state)
	})

	s.Dispatch(cart.Add{ProductID: "p1", Quantity: 1})
	s.Dispatch(cart.Clear{})

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if len(seen[0]) != 1 || len(seen[1]) != 0 {
		t.Fatalf("unexpected notification payloads: %v", seen)
	}

	unsubscribe()
	s.Dispatch(cart.Add{ProductID: "p2", Quantity: 1})
	if len(seen) != 2 {
		t.Fatalf("notified after unsubscribe: %d", len(seen))
	}
}
