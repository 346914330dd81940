// Package events publishes order lifecycle events to RabbitMQ.
// Publishing is best-effort: the API never fails because a broker is down.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
)

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order_created"
	OrderStatusUpdated OrderEventType = "order_status_updated"
	OrderDeleted       OrderEventType = "order_deleted"
)

type OrderEvent struct {
	EventID  uuid.UUID `json:"eventId"`
	OrderID  int64     `json:"orderId"`
	Type     string    `json:"type"`
	Status   string    `json:"status,omitempty"`
	Occurred time.Time `json:"occurred"`
}

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("conn.Channel: %w", err), conn.Close())
	}

	if err := channel.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, errors.Join(fmt.Errorf("channel.ExchangeDeclare: %w", err), conn.Close())
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, orderID int64, eventType OrderEventType, status domain.OrderStatus) error {
	event := OrderEvent{
		EventID:  uuid.New(),
		OrderID:  orderID,
		Type:     string(eventType),
		Status:   string(status),
		Occurred: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := p.channel.PublishWithContext(ctx,
		p.exchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID.String(),
			Timestamp:    event.Occurred,
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("channel.PublishWithContext: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return errors.Join(p.channel.Close(), p.conn.Close())
}
