package mq

import (
	"context"
	"encoding/json"
	"time"

	"dineboard/services"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchange = "dashboard_events"

// Publisher mirrors dashboard events onto a fanout exchange so external
// consumers can subscribe without holding a websocket to this process.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *Publisher) Publish(env services.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(ctx, exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    env.ID,
		Type:         env.Event,
		Timestamp:    env.At,
		Body:         body,
	})
}
