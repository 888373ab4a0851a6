package liteview

import (
	"errors"
	"testing"

	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
)

const goodReply = `<?xml version="1.0" encoding="UTF-8"?>
<toolkit>
  <submit_order>
    <order_information>
      <order_details>
        <ifs_order_number>LV123</ifs_order_number>
        <client_order_number>SQ999</client_order_number>
      </order_details>
    </order_information>
  </submit_order>
</toolkit>`

func TestDecodeReply(t *testing.T) {
	reply, err := DecodeReply([]byte(goodReply))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if reply.OrderNumber != "LV123" {
		t.Errorf("order number = %q, want LV123", reply.OrderNumber)
	}
	if reply.ClientOrderNumber != "SQ999" {
		t.Errorf("client order number = %q, want SQ999", reply.ClientOrderNumber)
	}
}

func TestDecodeReplyMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not xml", body: `{"ok":true}`},
		{name: "empty toolkit", body: `<toolkit></toolkit>`},
		{name: "missing order information", body: `<toolkit><submit_order></submit_order></toolkit>`},
		{name: "missing order details", body: `<toolkit><submit_order><order_information></order_information></submit_order></toolkit>`},
		{
			name: "missing ifs order number",
			body: `<toolkit><submit_order><order_information><order_details><client_order_number>SQ999</client_order_number></order_details></order_information></submit_order></toolkit>`,
		},
		{
			name: "missing client order number",
			body: `<toolkit><submit_order><order_information><order_details><ifs_order_number>LV123</ifs_order_number></order_details></order_information></submit_order></toolkit>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeReply([]byte(tc.body))
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !errors.Is(err, errorx.ErrMalformedReply) {
				t.Fatalf("error %v does not wrap ErrMalformedReply", err)
			}
		})
	}
}
