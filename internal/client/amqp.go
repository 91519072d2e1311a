package client

import (
	"context"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends messages to named queues.
type Publisher interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Close() error
}

type amqpPublisher struct {
	conn *amqp.Connection
}

func NewAmqpPublisher(amqpURL string) Publisher {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		log.Fatal("failed to connect to rabbitmq:", err)
	}
	return &amqpPublisher{conn: conn}
}

func (p *amqpPublisher) Publish(ctx context.Context, queueName string, message []byte) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key (queue name)
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        message,
		},
	)
}

func (p *amqpPublisher) Close() error {
	return p.conn.Close()
}
