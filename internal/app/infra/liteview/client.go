package liteview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// Client submits orders to the LiteView fulfillment API.
type Client struct {
	apiBase    string
	appKey     string
	account    string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates a fulfillment client for the given account path segment,
// authenticated with the static app key header.
func NewClient(apiBase, appKey, account string, log logger.Logger) *Client {
	return &Client{
		apiBase:    apiBase,
		appKey:     appKey,
		account:    account,
		httpClient: &http.Client{},
		log:        log,
	}
}

// Submit builds the fulfillment document for the order, POSTs it, and decodes
// the reply. A non-2xx response becomes an errorx.PartnerError carrying the
// raw body; a 2xx body that cannot be decoded wraps errorx.ErrMalformedReply.
func (c *Client) Submit(ctx context.Context, order *etorder.Order) (*etorder.SubmissionReply, error) {
	doc, err := BuildDocument(order)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/order/submit/%s", c.apiBase, c.account)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("appkey", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order LB-%d: %w", order.ID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read submit response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errorx.PartnerError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.log.Debugf(ctx, "liteview accepted order LB-%d, decoding reply", order.ID)
	return DecodeReply(body)
}
