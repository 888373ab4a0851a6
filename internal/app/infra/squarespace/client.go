package squarespace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// Client reads orders from the Squarespace commerce API.
type Client struct {
	apiBase    string
	token      string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates a commerce API client authenticated with the given
// bearer token.
func NewClient(apiBase, token string, log logger.Logger) *Client {
	return &Client{
		apiBase:    apiBase,
		token:      token,
		httpClient: &http.Client{},
		log:        log,
	}
}

// GetOrder fetches the full order for the given id. A non-2xx response is
// returned as an errorx.ProviderError carrying the raw body. Single attempt,
// no retry.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	url := fmt.Sprintf("%s/1.0/commerce/orders/%s", c.apiBase, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errorx.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var order etorder.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", orderID, err)
	}

	c.log.Debugf(ctx, "fetched squarespace order id=%d line_items=%d", order.ID, len(order.LineItems))
	return &order, nil
}
