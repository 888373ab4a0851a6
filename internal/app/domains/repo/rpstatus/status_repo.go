package rpstatus

import (
	"context"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
)

// StatusRepository persists order status records. The relay only ever writes;
// reads belong to the shipment tracking side.
type StatusRepository interface {
	// Create stores a record keyed by the partner order number.
	Create(ctx context.Context, rec *etorder.StatusRecord) error
}
