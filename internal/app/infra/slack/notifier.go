package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// Message is a Slack incoming-webhook payload.
type Message struct {
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Notifier posts operational alerts to a Slack incoming webhook. Sends are
// fire-and-forget: they run on their own goroutine and never block or fail
// the request being handled.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	log        logger.Logger
}

func NewNotifier(webhookURL string, log logger.Logger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Success announces a relayed order with both order numbers.
func (n *Notifier) Success(ctx context.Context, orderNumber, squarespaceOrderNumber string) {
	n.send(ctx, Message{
		Text: "Successful order :tada:",
		Attachments: []Attachment{
			{
				Title: "Order Information",
				Fields: []Field{
					{Title: "LV Order Number", Value: orderNumber, Short: true},
					{Title: "Squarespace Order Number", Value: squarespaceOrderNumber, Short: true},
				},
			},
		},
	})
}

// Failure announces a failed relay with a diagnostic text.
func (n *Notifier) Failure(ctx context.Context, text string) {
	n.send(ctx, Message{Text: text})
}

func (n *Notifier) send(ctx context.Context, msg Message) {
	traceID := logger.TraceID(ctx)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sendCtx = logger.WithTraceID(sendCtx, traceID)

		payload, err := json.Marshal(msg)
		if err != nil {
			n.log.Errorf(sendCtx, "marshal slack message failed: %v", err)
			return
		}

		req, err := http.NewRequestWithContext(sendCtx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
		if err != nil {
			n.log.Errorf(sendCtx, "build slack request failed: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.log.Errorf(sendCtx, "send slack message failed: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			n.log.Warnf(sendCtx, "slack webhook returned %d", resp.StatusCode)
		}
	}()
}
