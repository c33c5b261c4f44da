package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const itemQueueName = "item.events"

// Publisher emits ItemEvents to RabbitMQ. Publishing is strictly best
// effort: every error is logged and returned, but callers are expected to
// ignore failures so the request flow is never interrupted. A Publisher
// constructed without a broker URL is a no-op.
type Publisher struct {
	url string
	log logrus.FieldLogger
}

// NewPublisher builds a Publisher for the given broker URL. An empty URL
// disables publishing entirely.
func NewPublisher(url string, log logrus.FieldLogger) *Publisher {
	return &Publisher{url: url, log: log}
}

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool {
	return p != nil && p.url != ""
}

// PublishItemEvent declares the durable item.events queue and publishes the
// event to it as persistent JSON. The connection is established per publish
// so a broker outage never leaves the process holding a broken channel.
func (p *Publisher) PublishItemEvent(ctx context.Context, ev ItemEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		itemQueueName, // name
		true,          // durable
		false,         // autoDelete
		false,         // exclusive
		false,         // noWait
		nil,           // args
	); err != nil {
		p.log.WithError(err).Warn("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",            // default exchange
		itemQueueName, // routing key = queue name
		false,         // mandatory
		false,         // immediate
		pub,
	); err != nil {
		p.log.WithError(err).Warn("rabbitmq: publish failed")
		return err
	}

	return nil
}
