package svrelay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davegonzalez/Litview/internal/app/domains/apimodel/request"
	"github.com/davegonzalez/Litview/internal/app/domains/entity/etorder"
	"github.com/davegonzalez/Litview/internal/app/domains/repo/rpstatus"
	"github.com/davegonzalez/Litview/internal/app/infra/persistence/redis"
	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
	"github.com/davegonzalez/Litview/internal/app/pkg/stats"
)

// OrderFetcher reads a full order from the commerce provider.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (*etorder.Order, error)
}

// OrderSubmitter submits an order to the fulfillment partner and returns the
// parsed reply.
type OrderSubmitter interface {
	Submit(ctx context.Context, order *etorder.Order) (*etorder.SubmissionReply, error)
}

// Notifier reports relay outcomes to the operational channel.
type Notifier interface {
	Success(ctx context.Context, orderNumber, squarespaceOrderNumber string)
	Failure(ctx context.Context, text string)
}

// OutcomePublisher broadcasts accepted relays. Optional; may be nil.
type OutcomePublisher interface {
	PublishRelayComplete(ctx context.Context, channel string, notification *redis.RelayNotification) error
}

// State is a terminal relay state.
type State string

const (
	// StateAccepted means the partner accepted the order and a status record
	// was written.
	StateAccepted State = "accepted"
	// StateSkipped means no line item matched the brand filter; nothing was
	// submitted.
	StateSkipped State = "skipped"
)

// Outcome is the result of a successful relay. Failed relays surface as
// errors instead.
type Outcome struct {
	State  State
	Order  *etorder.Order        // set when skipped, carries the filtered order
	Record *etorder.StatusRecord // set when accepted
}

// RelayService orchestrates one webhook request end to end: extract the order
// id, fetch the order, filter its line items, submit to fulfillment, persist
// the status record, and notify. Every collaborator is injected.
type RelayService struct {
	orders      OrderFetcher
	fulfillment OrderSubmitter
	statusRepo  rpstatus.StatusRepository
	notifier    Notifier
	publisher   OutcomePublisher
	channel     string
	brandMarker string
	stats       *stats.RelayStats
	log         logger.Logger
}

func NewRelayService(
	orders OrderFetcher,
	fulfillment OrderSubmitter,
	statusRepo rpstatus.StatusRepository,
	notifier Notifier,
	publisher OutcomePublisher,
	channel string,
	brandMarker string,
	relayStats *stats.RelayStats,
	log logger.Logger,
) *RelayService {
	return &RelayService{
		orders:      orders,
		fulfillment: fulfillment,
		statusRepo:  statusRepo,
		notifier:    notifier,
		publisher:   publisher,
		channel:     channel,
		brandMarker: brandMarker,
		stats:       relayStats,
		log:         log,
	}
}

// Relay runs the full flow for one inbound event. raw is the undecoded
// request body, used in the missing-id diagnostic. Each stage runs once, in
// order; the first failure short-circuits.
func (s *RelayService) Relay(ctx context.Context, event *request.InboundEvent, raw []byte) (*Outcome, error) {
	s.stats.Received.Inc()

	orderID, ok := event.OrderID()
	if !ok {
		s.notifier.Failure(ctx, fmt.Sprintf("No stripe id found: %s", raw))
		s.stats.Failed.Inc()
		return nil, errorx.ErrMissingOrderID
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		s.notifier.Failure(ctx, fmt.Sprintf("Squarespace order fetch failed: %v", err))
		s.stats.Failed.Inc()
		return nil, err
	}

	filtered := order.FilterLineItems(s.brandMarker)
	if len(filtered.LineItems) == 0 {
		s.log.Infof(ctx, "order %d has no eligible line items, skipping submission", order.ID)
		s.stats.Skipped.Inc()
		return &Outcome{State: StateSkipped, Order: filtered}, nil
	}

	reply, err := s.fulfillment.Submit(ctx, filtered)
	if err != nil {
		var partnerErr *errorx.PartnerError
		if errors.As(err, &partnerErr) {
			s.notifier.Failure(ctx, fmt.Sprintf("Liteview error response: \n %s", partnerErr.Body))
		} else {
			s.notifier.Failure(ctx, fmt.Sprintf("within liteview ok response\n%v", err))
		}
		s.stats.Failed.Inc()
		return nil, err
	}

	record := &etorder.StatusRecord{
		OrderNumber:            reply.OrderNumber,
		SquarespaceOrderNumber: reply.ClientOrderNumber,
		ShipStatus:             etorder.ShipStatusPending,
	}
	if err := s.statusRepo.Create(ctx, record); err != nil {
		s.notifier.Failure(ctx, fmt.Sprintf("Persisting order %s failed: %v", record.OrderNumber, err))
		s.stats.Failed.Inc()
		return nil, fmt.Errorf("persist status record: %w", err)
	}

	s.notifier.Success(ctx, record.OrderNumber, record.SquarespaceOrderNumber)
	s.publishOutcome(ctx, record)
	s.stats.Accepted.Inc()

	return &Outcome{State: StateAccepted, Record: record}, nil
}

// publishOutcome broadcasts the accepted relay. Publish failures are logged
// only; the relay already succeeded.
func (s *RelayService) publishOutcome(ctx context.Context, record *etorder.StatusRecord) {
	if s.publisher == nil {
		return
	}

	notification := &redis.RelayNotification{
		OrderNumber:            record.OrderNumber,
		SquarespaceOrderNumber: record.SquarespaceOrderNumber,
		ShipStatus:             record.ShipStatus,
		Timestamp:              time.Now().Unix(),
	}
	if err := s.publisher.PublishRelayComplete(ctx, s.channel, notification); err != nil {
		s.log.Warnf(ctx, "publish relay outcome failed: order_number=%s, error=%v", record.OrderNumber, err)
	}
}
