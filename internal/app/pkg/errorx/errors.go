package errorx

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOrderID signals an inbound event without an order id at
	// data.object.metadata.id.
	ErrMissingOrderID = errors.New("no order id found in event")

	// ErrMalformedReply signals a fulfillment reply that could not be decoded
	// or is missing required fields.
	ErrMalformedReply = errors.New("malformed fulfillment reply")
)

// ProviderError is a non-2xx response from the commerce provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("commerce provider returned %d: %s", e.StatusCode, e.Body)
}

// PartnerError is a non-2xx response from the fulfillment partner.
type PartnerError struct {
	StatusCode int
	Body       string
}

func (e *PartnerError) Error() string {
	return fmt.Sprintf("fulfillment partner returned %d: %s", e.StatusCode, e.Body)
}
