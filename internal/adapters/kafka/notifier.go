// internal/adapters/kafka/notifier.go
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/jncrafts/storefront/internal/domain"
)

const (
	EventOrderPlaced      = "order.placed"
	EventPaymentConfirmed = "payment.confirmed"
)

// Event is the notification payload consumed by the messaging service.
type Event struct {
	Type        string                 `json:"type"`
	OrderNumber string                 `json:"orderNumber"`
	UserID      int64                  `json:"userId"`
	Customer    domain.CustomerInfo    `json:"customer"`
	Delivery    domain.DeliveryDetails `json:"delivery"`
	Total       float64                `json:"total"`
	PaymentRef  string                 `json:"paymentReference,omitempty"`
	OccurredAt  time.Time              `json:"occurredAt"`
}

// MessageWriter is the part of *kafka.Writer the notifier uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier publishes order lifecycle events, keyed by order number so that
// all events for one order land on the same partition.
type Notifier struct {
	writer MessageWriter
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewNotifier(writer MessageWriter) *Notifier {
	return &Notifier{writer: writer}
}

func (n *Notifier) OrderPlaced(ctx context.Context, order *domain.Order) error {
	return n.publish(ctx, EventOrderPlaced, order)
}

func (n *Notifier) PaymentConfirmed(ctx context.Context, order *domain.Order) error {
	return n.publish(ctx, EventPaymentConfirmed, order)
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

func (n *Notifier) publish(ctx context.Context, eventType string, order *domain.Order) error {
	evt := Event{
		Type:        eventType,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Customer:    order.Request.CustomerInfo,
		Delivery:    order.Request.DeliveryDetails,
		Total:       order.Request.Total,
		PaymentRef:  order.PaymentReference,
		OccurredAt:  time.Now().UTC(),
	}
	value, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "marshal notification event")
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	headers := make([]kafka.Header, 0, len(carrier)+1)
	headers = append(headers, kafka.Header{Key: "event-type", Value: []byte(eventType)})
	for k, v := range carrier {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := kafka.Message{
		Key:     []byte(order.OrderNumber),
		Value:   value,
		Headers: headers,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "publish %s for order %s", eventType, order.OrderNumber)
	}
	return nil
}
