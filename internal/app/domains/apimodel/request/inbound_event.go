package request

// InboundEvent is the payment provider webhook payload. The only field the
// relay interprets is the order id at data.object.metadata.id; each level is
// optional so a truncated payload resolves to "no id" instead of a decode
// error.
type InboundEvent struct {
	Data *EventData `json:"data"`
}

type EventData struct {
	Object *EventObject `json:"object"`
}

type EventObject struct {
	Metadata *EventMetadata `json:"metadata"`
}

type EventMetadata struct {
	ID string `json:"id"`
}

// OrderID walks the nested payload and reports whether an order id is
// present.
func (e *InboundEvent) OrderID() (string, bool) {
	if e == nil || e.Data == nil || e.Data.Object == nil || e.Data.Object.Metadata == nil {
		return "", false
	}
	if e.Data.Object.Metadata.ID == "" {
		return "", false
	}
	return e.Data.Object.Metadata.ID, true
}
