package etorder

import "testing"

func TestFilterLineItems(t *testing.T) {
	order := &Order{
		ID: 482,
		LineItems: []LineItem{
			{SKU: "SKU-1", ProductName: "NBA Finals Poster", Quantity: 1},
			{SKU: "SKU-2", ProductName: "Baseball Cap", Quantity: 2},
			{SKU: "SKU-3", ProductName: "Vintage NBA Jersey", Quantity: 1},
		},
	}

	filtered := order.FilterLineItems("NBA")

	if len(filtered.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(filtered.LineItems))
	}
	if filtered.LineItems[0].SKU != "SKU-1" || filtered.LineItems[1].SKU != "SKU-3" {
		t.Fatalf("unexpected line items kept: %+v", filtered.LineItems)
	}
	if len(order.LineItems) != 3 {
		t.Fatalf("original order mutated, got %d line items", len(order.LineItems))
	}
}

func TestFilterLineItemsNoMatch(t *testing.T) {
	order := &Order{
		ID: 1,
		LineItems: []LineItem{
			{SKU: "SKU-2", ProductName: "Baseball Cap", Quantity: 2},
		},
	}

	filtered := order.FilterLineItems("NBA")

	if len(filtered.LineItems) != 0 {
		t.Fatalf("expected no line items, got %d", len(filtered.LineItems))
	}
	if filtered.ID != order.ID {
		t.Fatalf("filtered copy lost order fields: id=%d", filtered.ID)
	}
}

func TestFilterLineItemsEmptyOrder(t *testing.T) {
	order := &Order{ID: 7}

	filtered := order.FilterLineItems("NBA")

	if len(filtered.LineItems) != 0 {
		t.Fatalf("expected no line items, got %d", len(filtered.LineItems))
	}
}
