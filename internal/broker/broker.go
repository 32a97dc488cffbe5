package broker

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker wraps a RabbitMQ topic exchange used for booking notifications.
type Broker struct {
	url      string
	exchange string
	conn     *amqp.Connection
	channel  *amqp.Channel
}

// NewBroker connects to RabbitMQ and declares the exchange.
func NewBroker(url, exchange, kind string) (*Broker, error) {
	b := &Broker{url: url, exchange: exchange}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("Failed to connect to RabbitMQ: %v", err)
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("Failed to open channel: %v", err)
		conn.Close()
		return nil, err
	}

	if exchange != "" {
		if err := ch.ExchangeDeclare(exchange, kind, true, false, false, false, nil); err != nil {
			log.Printf("Failed to declare exchange: %v", err)
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	b.conn = conn
	b.channel = ch
	return b, nil
}

func (b *Broker) ensureConnection() error {
	if b.conn != nil && !b.conn.IsClosed() {
		return nil
	}

	conn, err := amqp.Dial(b.url)
	if err != nil {
		log.Printf("Failed to reconnect to RabbitMQ: %v", err)
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("Failed to open channel on reconnect: %v", err)
		conn.Close()
		return err
	}

	b.conn = conn
	b.channel = ch
	return nil
}

// Publish marshals the message as JSON and routes it under the given key.
func (b *Broker) Publish(message interface{}, key string) error {
	if err := b.ensureConnection(); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return b.channel.Publish(
		b.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// DeclareAndBindQueue makes sure a durable queue exists and receives messages
// routed under the given key.
func (b *Broker) DeclareAndBindQueue(queueName, routingKey string) error {
	if err := b.ensureConnection(); err != nil {
		return err
	}

	if _, err := b.channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}

	return b.channel.QueueBind(queueName, routingKey, b.exchange, false, nil)
}

// Consume starts delivering messages from a queue.
func (b *Broker) Consume(queueName string) (<-chan amqp.Delivery, error) {
	if err := b.ensureConnection(); err != nil {
		return nil, err
	}

	return b.channel.Consume(queueName, "", true, false, false, false, nil)
}

// SetQoS limits how many unacknowledged messages a consumer holds at once.
func (b *Broker) SetQoS(prefetchCount int) error {
	if err := b.ensureConnection(); err != nil {
		return err
	}
	return b.channel.Qos(prefetchCount, 0, false)
}

// Close shuts down the channel and connection.
func (b *Broker) Close() error {
	if b.channel != nil {
		if err := b.channel.Close(); err != nil {
			log.Printf("Failed to close channel: %v", err)
			return err
		}
	}
	if b.conn != nil {
		if err := b.conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
			return err
		}
	}
	return nil
}
