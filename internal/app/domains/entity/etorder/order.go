package etorder

import (
	"strings"
	"time"
)

// Order is a commerce order as returned by the Squarespace orders API. Only
// the fields the relay consumes are mapped.
type Order struct {
	ID              int64      `json:"id"`
	CreatedOn       time.Time  `json:"createdOn"`
	CustomerEmail   string     `json:"customerEmail"`
	BillingAddress  Address    `json:"billingAddress"`
	ShippingAddress Address    `json:"shippingAddress"`
	Subtotal        Money      `json:"subtotal"`
	ShippingTotal   Money      `json:"shippingTotal"`
	TaxTotal        Money      `json:"taxTotal"`
	DiscountTotal   Money      `json:"discountTotal"`
	GrandTotal      Money      `json:"grandTotal"`
	LineItems       []LineItem `json:"lineItems"`
}

// Address holds a billing or shipping contact. Address2 is optional and stays
// empty when the provider omits it.
type Address struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
}

// Money is a decimal amount. Value is kept as the provider's string so totals
// pass through to the fulfillment document unchanged.
type Money struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// LineItem is one purchasable line on an order.
type LineItem struct {
	SKU           string `json:"sku"`
	ProductName   string `json:"productName"`
	UnitPricePaid Money  `json:"unitPricePaid"`
	Quantity      int    `json:"quantity"`
}

// FilterLineItems returns a copy of the order keeping only line items whose
// product name contains the marker substring. The copy may have an empty line
// item list, which means the order has nothing to fulfill.
func (o *Order) FilterLineItems(marker string) *Order {
	filtered := *o
	filtered.LineItems = make([]LineItem, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if strings.Contains(item.ProductName, marker) {
			filtered.LineItems = append(filtered.LineItems, item)
		}
	}
	return &filtered
}

// ShipStatusPending is the initial shipment status of a relayed order.
const ShipStatusPending = "pending"

// StatusRecord is the persisted outcome of a successful submission, keyed by
// the fulfillment partner's order number. Write-only from the relay's
// perspective.
type StatusRecord struct {
	OrderNumber            string
	SquarespaceOrderNumber string
	ShipStatus             string
	CreatedAt              time.Time
}

// SubmissionReply is the parsed fulfillment partner response.
type SubmissionReply struct {
	OrderNumber       string
	ClientOrderNumber string
}
