package squarespace

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

const orderJSON = `{
  "id": 482,
  "createdOn": "2020-03-05T10:00:00Z",
  "customerEmail": "buyer@example.com",
  "billingAddress": {"firstName": "Jane", "lastName": "Doe", "address1": "1 Main St", "city": "Portland", "state": "OR", "postalCode": "97201", "countryCode": "US", "phone": "555-0100"},
  "shippingAddress": {"firstName": "Jane", "lastName": "Doe", "address1": "1 Main St", "city": "Portland", "state": "OR", "postalCode": "97201", "countryCode": "US", "phone": "555-0100"},
  "subtotal": {"value": "50.00", "currency": "USD"},
  "shippingTotal": {"value": "5.00", "currency": "USD"},
  "taxTotal": {"value": "4.13", "currency": "USD"},
  "discountTotal": {"value": "0.00", "currency": "USD"},
  "grandTotal": {"value": "59.13", "currency": "USD"},
  "lineItems": [
    {"sku": "SKU-NBA-1", "productName": "NBA Finals Poster", "unitPricePaid": {"value": "50.00", "currency": "USD"}, "quantity": 1}
  ]
}`

func TestClientGetOrder(t *testing.T) {
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(orderJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sq-token", logger.NewNop())
	order, err := client.GetOrder(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}

	if gotAuth != "Bearer sq-token" {
		t.Errorf("authorization header = %q, want Bearer sq-token", gotAuth)
	}
	if gotPath != "/1.0/commerce/orders/abc123" {
		t.Errorf("path = %q, want /1.0/commerce/orders/abc123", gotPath)
	}
	if order.ID != 482 {
		t.Errorf("order id = %d, want 482", order.ID)
	}
	if len(order.LineItems) != 1 || order.LineItems[0].SKU != "SKU-NBA-1" {
		t.Errorf("unexpected line items: %+v", order.LineItems)
	}
	if order.Subtotal.Value != "50.00" {
		t.Errorf("subtotal = %q, want 50.00", order.Subtotal.Value)
	}
	if got := order.CreatedOn.Format("2006-01-02"); got != "2020-03-05" {
		t.Errorf("created on renders %q, want 2020-03-05", got)
	}
}

func TestClientGetOrderProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bad-token", logger.NewNop())
	_, err := client.GetOrder(context.Background(), "abc123")

	var providerErr *errorx.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", providerErr.StatusCode)
	}
	if providerErr.Body != `{"message":"invalid token"}` {
		t.Errorf("body = %q", providerErr.Body)
	}
}
