package notifier

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rescuebite/rescuebite/internal/adapter/config"
	"github.com/rescuebite/rescuebite/internal/core/domain"
	"go.uber.org/zap"
)

const notificationExchange = "notifications_fanout"

// RabbitMQPublisher pushes outbox events into a fanout exchange.
// Consumers (push, email, SMS) bind their own queues; the core never
// learns whether anyone listened.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

func NewRabbitMQPublisher(cfg *config.Broker, log *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		notificationExchange, // name
		"fanout",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQPublisher{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event *domain.Event) error {
	return p.channel.PublishWithContext(ctx,
		notificationExchange,
		event.Name, // routing key, ignored by fanout but useful in logs
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID.String(),
			Type:        event.Name,
			Timestamp:   event.CreatedAt,
			Body:        event.Payload,
		})
}

func (p *RabbitMQPublisher) Close() {
	if err := p.channel.Close(); err != nil {
		p.logger.Error("close channel", zap.Error(err))
	}
	if err := p.conn.Close(); err != nil {
		p.logger.Error("close connection", zap.Error(err))
	}
}
