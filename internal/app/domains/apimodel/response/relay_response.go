package response

import "github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"

// RelayAccepted is the 200 body for a submitted order.
type RelayAccepted struct {
	OrderNumber            string `json:"orderNumber"`
	SquarespaceOrderNumber string `json:"squarespaceOrderNumber"`
	ShipStatus             string `json:"shipStatus"`
}

// RelaySkipped is the 200 body when no line item survives the brand filter.
// It echoes the filtered order so the caller can see why nothing was
// submitted.
type RelaySkipped struct {
	Order *etorder.Order `json:"order"`
}

// FromStatusRecord maps a persisted status record to the response body.
func FromStatusRecord(rec *etorder.StatusRecord) RelayAccepted {
	return RelayAccepted{
		OrderNumber:            rec.OrderNumber,
		SquarespaceOrderNumber: rec.SquarespaceOrderNumber,
		ShipStatus:             rec.ShipStatus,
	}
}
