package liteview

import (
	"encoding/xml"
	"fmt"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
)

// Reply shape:
// toolkit/submit_order/order_information/order_details/{ifs_order_number,client_order_number}.
// Every level is a pointer so a missing element fails the presence checks
// below instead of decoding to a zero value.
type replyToolkit struct {
	XMLName     xml.Name          `xml:"toolkit"`
	SubmitOrder *replySubmitOrder `xml:"submit_order"`
}

type replySubmitOrder struct {
	OrderInformation *replyOrderInformation `xml:"order_information"`
}

type replyOrderInformation struct {
	OrderDetails *replyOrderDetails `xml:"order_details"`
}

type replyOrderDetails struct {
	IFSOrderNumber    *string `xml:"ifs_order_number"`
	ClientOrderNumber *string `xml:"client_order_number"`
}

// DecodeReply parses a 2xx fulfillment response body. Any structural problem
// wraps errorx.ErrMalformedReply.
func DecodeReply(body []byte) (*etorder.SubmissionReply, error) {
	var toolkit replyToolkit
	if err := xml.Unmarshal(body, &toolkit); err != nil {
		return nil, fmt.Errorf("%w: %v", errorx.ErrMalformedReply, err)
	}

	if toolkit.SubmitOrder == nil {
		return nil, fmt.Errorf("%w: missing submit_order", errorx.ErrMalformedReply)
	}
	if toolkit.SubmitOrder.OrderInformation == nil {
		return nil, fmt.Errorf("%w: missing order_information", errorx.ErrMalformedReply)
	}
	details := toolkit.SubmitOrder.OrderInformation.OrderDetails
	if details == nil {
		return nil, fmt.Errorf("%w: missing order_details", errorx.ErrMalformedReply)
	}
	if details.IFSOrderNumber == nil || *details.IFSOrderNumber == "" {
		return nil, fmt.Errorf("%w: missing ifs_order_number", errorx.ErrMalformedReply)
	}
	if details.ClientOrderNumber == nil || *details.ClientOrderNumber == "" {
		return nil, fmt.Errorf("%w: missing client_order_number", errorx.ErrMalformedReply)
	}

	return &etorder.SubmissionReply{
		OrderNumber:       *details.IFSOrderNumber,
		ClientOrderNumber: *details.ClientOrderNumber,
	}, nil
}
