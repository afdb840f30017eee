package domain_test

import (
	"reflect"
	"testing"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

func TestCartAddMergesByProduct(t *testing.T) {
	state := domain.CartState{}
	state = state.Add("p1", 2)
	state = state.Add("p2", 1)
	state = state.Add("p1", 3)

	want := domain.CartState{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	}
	if !reflect.DeepEqual(state, want) {
		t.Fatalf("got %v, want %v", state, want)
	}
}

func TestCartAddPreservesPosition(t *testing.T) {
	state := domain.CartState{}
	state = state.Add("a", 1)
	state = state.Add("b", 1)
	state = state.Add("c", 1)
	state = state.Add("b", 4)

	if state[1].ProductID != "b" || state[1].Quantity != 5 {
		t.Fatalf("expected b at position 1 with quantity 5, got %v", state)
	}
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	state := domain.CartState{{ProductID: "p1", Quantity: 2}}
	got := state.Remove("missing")
	if !reflect.DeepEqual(got, state) {
		t.Fatalf("remove of absent id changed state: %v", got)
	}
}

func TestCartRemove(t *testing.T) {
	state := domain.CartState{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}
	got := state.Remove("p1")
	want := domain.CartState{{ProductID: "p2", Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCartClear(t *testing.T) {
	state := domain.CartState{{ProductID: "p1", Quantity: 2}}
	if got := state.Clear(); len(got) != 0 {
		t.Fatalf("clear left items: %v", got)
	}
	if got := (domain.CartState{}).Clear(); len(got) != 0 {
		t.Fatalf("clear of empty cart not empty: %v", got)
	}
}

func TestCartOperationsDoNotMutateReceiver(t *testing.T) {
	orig := domain.CartState{{ProductID: "p1", Quantity: 2}}
	_ = orig.Add("p1", 3)
	_ = orig.Add("p2", 1)
	_ = orig.Remove("p1")

	want := domain.CartState{{ProductID: "p1", Quantity: 2}}
	if !reflect.DeepEqual(orig, want) {
		t.Fatalf("receiver mutated: %v", orig)
	}
}
