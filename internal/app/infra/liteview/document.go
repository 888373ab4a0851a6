package liteview

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
)

// extendedUnitPrice is the contracted flat rate used for the extended price
// on every line, regardless of the storefront unit price.
const extendedUnitPrice = 100.0

// passthroughPlaceholder fills the two passthrough fields LiteView requires
// on each item.
const passthroughPlaceholder = "non-related lv id"

type document struct {
	XMLName     xml.Name    `xml:"toolkit"`
	SubmitOrder submitOrder `xml:"submit_order"`
}

type submitOrder struct {
	OrderInfo orderInfo `xml:"order_info"`
}

type orderInfo struct {
	OrderDetails    orderDetails    `xml:"order_details"`
	BillingContact  billingContact  `xml:"billing_contact"`
	ShippingContact shippingContact `xml:"shipping_contact"`
	BillingDetails  billingDetails  `xml:"billing_details"`
	ShippingDetails shippingDetails `xml:"shipping_details"`
	OrderNotes      orderNotes      `xml:"order_notes"`
	OrderItems      orderItems      `xml:"order_items"`
}

type orderDetails struct {
	OrderStatus          string `xml:"order_status"`
	OrderDate            string `xml:"order_date"`
	OrderNumber          string `xml:"order_number"`
	OrderSource          string `xml:"order_source"`
	OrderType            string `xml:"order_type"`
	CatalogName          string `xml:"catalog_name"`
	GiftOrder            string `xml:"gift_order"`
	AllocateInventoryNow string `xml:"allocate_inventory_now"`
}

type billingContact struct {
	Prefix      string `xml:"billto_prefix"`
	FirstName   string `xml:"billto_first_name"`
	LastName    string `xml:"billto_last_name"`
	Suffix      string `xml:"billto_suffix"`
	CompanyName string `xml:"billto_company_name"`
	Address1    string `xml:"billto_address1"`
	Address2    string `xml:"billto_address2"`
	Address3    string `xml:"billto_address3"`
	City        string `xml:"billto_city"`
	State       string `xml:"billto_state"`
	PostalCode  string `xml:"billto_postal_code"`
	Country     string `xml:"billto_country"`
	Telephone   string `xml:"billto_telephone_no"`
	Email       string `xml:"billto_email"`
}

type shippingContact struct {
	Prefix      string `xml:"shipto_prefix"`
	FirstName   string `xml:"shipto_first_name"`
	LastName    string `xml:"shipto_last_name"`
	Suffix      string `xml:"shipto_suffix"`
	CompanyName string `xml:"shipto_company_name"`
	Address1    string `xml:"shipto_address1"`
	Address2    string `xml:"shipto_address2"`
	Address3    string `xml:"shipto_address3"`
	City        string `xml:"shipto_city"`
	State       string `xml:"shipto_state"`
	PostalCode  string `xml:"shipto_postal_code"`
	Country     string `xml:"shipto_country"`
	Telephone   string `xml:"shipto_telephone_no"`
	Email       string `xml:"shipto_email"`
}

type billingDetails struct {
	SubTotal         string `xml:"sub_total"`
	ShippingHandling string `xml:"shipping_handling"`
	SalesTaxTotal    string `xml:"sales_tax_total"`
	DiscountTotal    string `xml:"discount_total"`
	GrandTotal       string `xml:"grand_total"`
}

type shippingDetails struct {
	ShipMethod  string      `xml:"ship_method"`
	ShipOptions shipOptions `xml:"ship_options"`
}

type shipOptions struct {
	SignatureRequested        string `xml:"signature_requested"`
	InsuranceRequested        string `xml:"insurance_requested"`
	InsuranceValue            string `xml:"insurance_value"`
	SaturdayDeliveryRequested string `xml:"saturday_delivery_requested"`
	ThirdPartyBillingReq      string `xml:"third_party_billing_requested"`
	ThirdPartyBillingAccount  string `xml:"third_party_billing_account_no"`
	ThirdPartyBillingZip      string `xml:"third_party_billing_zip"`
	ThirdPartyCountry         string `xml:"third_party_country"`
	GeneralDescription        string `xml:"general_description"`
	ContentDescription        string `xml:"content_description"`
}

type orderNotes struct {
	Note orderNote `xml:"note"`
}

type orderNote struct {
	NoteType        string `xml:"note_type"`
	NoteDescription string `xml:"note_description"`
	ShowOnPS        string `xml:"show_on_ps"`
}

type orderItems struct {
	TotalLineItems int    `xml:"total_line_items"`
	Items          []item `xml:"item"`
}

type item struct {
	InventoryItem            string `xml:"inventory_item"`
	InventoryItemSKU         string `xml:"inventory_item_sku"`
	InventoryItemDescription string `xml:"inventory_item_description"`
	InventoryItemPrice       string `xml:"inventory_item_price"`
	InventoryItemQty         int    `xml:"inventory_item_qty"`
	InventoryItemExtPrice    string `xml:"inventory_item_ext_price"`
	InventoryPassthrough01   string `xml:"inventory_passthrough_01"`
	InventoryPassthrough02   string `xml:"inventory_passthrough_02"`
}

// BuildDocument projects an order into the LiteView submit_order XML. The
// projection is pure: the same order always yields the same bytes.
func BuildDocument(order *etorder.Order) (string, error) {
	doc := document{
		SubmitOrder: submitOrder{
			OrderInfo: orderInfo{
				OrderDetails: orderDetails{
					OrderStatus:          "Active",
					OrderDate:            order.CreatedOn.Format("2006-01-02"),
					OrderNumber:          fmt.Sprintf("LB-%d", order.ID),
					OrderSource:          "Web",
					OrderType:            "Regular",
					CatalogName:          "LB",
					GiftOrder:            "False",
					AllocateInventoryNow: "TRUE",
				},
				BillingContact: billingContact{
					FirstName:  order.BillingAddress.FirstName,
					LastName:   order.BillingAddress.LastName,
					Address1:   order.BillingAddress.Address1,
					Address2:   order.BillingAddress.Address2,
					City:       order.BillingAddress.City,
					State:      order.BillingAddress.State,
					PostalCode: order.BillingAddress.PostalCode,
					Country:    order.BillingAddress.CountryCode,
					Telephone:  order.BillingAddress.Phone,
					Email:      order.CustomerEmail,
				},
				ShippingContact: shippingContact{
					FirstName:  order.ShippingAddress.FirstName,
					LastName:   order.ShippingAddress.LastName,
					Address1:   order.ShippingAddress.Address1,
					Address2:   order.ShippingAddress.Address2,
					City:       order.ShippingAddress.City,
					State:      order.ShippingAddress.State,
					PostalCode: order.ShippingAddress.PostalCode,
					Country:    order.ShippingAddress.CountryCode,
					Telephone:  order.ShippingAddress.Phone,
					Email:      order.CustomerEmail,
				},
				BillingDetails: billingDetails{
					SubTotal:         order.Subtotal.Value,
					ShippingHandling: order.ShippingTotal.Value,
					SalesTaxTotal:    order.TaxTotal.Value,
					DiscountTotal:    order.DiscountTotal.Value,
					GrandTotal:       order.GrandTotal.Value,
				},
				ShippingDetails: shippingDetails{
					ShipMethod: "DHL Global Mail SM Parcel Plus Ground Machinable",
					ShipOptions: shipOptions{
						SignatureRequested:        "FALSE",
						InsuranceRequested:        "FALSE",
						InsuranceValue:            order.Subtotal.Value,
						SaturdayDeliveryRequested: "TRUE",
						ThirdPartyBillingReq:      "FALSE",
						ThirdPartyCountry:         "US",
						GeneralDescription:        "Sale item",
						ContentDescription:        "Artwork",
					},
				},
				OrderNotes: orderNotes{
					Note: orderNote{
						NoteType:        "shipping",
						NoteDescription: "Please make sure to pack order well",
						ShowOnPS:        "True",
					},
				},
				OrderItems: orderItems{
					TotalLineItems: len(order.LineItems),
					Items:          buildItems(order.LineItems),
				},
			},
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal fulfillment document: %w", err)
	}
	return xml.Header + string(out), nil
}

func buildItems(lineItems []etorder.LineItem) []item {
	items := make([]item, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, item{
			InventoryItem:            li.SKU,
			InventoryItemSKU:         li.SKU,
			InventoryItemDescription: li.ProductName,
			InventoryItemPrice:       li.UnitPricePaid.Value,
			InventoryItemQty:         li.Quantity,
			InventoryItemExtPrice:    formatExtPrice(li.Quantity),
			InventoryPassthrough01:   passthroughPlaceholder,
			InventoryPassthrough02:   passthroughPlaceholder,
		})
	}
	return items
}

func formatExtPrice(quantity int) string {
	return strconv.FormatFloat(float64(quantity)*extendedUnitPrice, 'f', -1, 64)
}
