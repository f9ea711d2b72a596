package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"tube_analytics/internal/domain"
)

const messageType = "trending.snapshot"

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// NewRabbitMQ connects and declares a durable direct exchange with one durable
// queue bound under RoutingKey.
func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// SnapshotMessage is the JSON body of every published delivery.
type SnapshotMessage struct {
	Region     string         `json:"region"`
	FetchedAt  time.Time      `json:"fetchedAt"`
	VideoCount int            `json:"videoCount"`
	Videos     []domain.Video `json:"videos"`
	Timestamp  time.Time      `json:"timestamp"`
}

func newSnapshotMessage(snapshot *domain.TrendingSnapshot, now time.Time) SnapshotMessage {
	videos := snapshot.Videos
	if videos == nil {
		videos = []domain.Video{}
	}
	return SnapshotMessage{
		Region:     snapshot.Region,
		FetchedAt:  snapshot.FetchedAt,
		VideoCount: len(videos),
		Videos:     videos,
		Timestamp:  now.UTC(),
	}
}

// publishing builds the persistent JSON delivery for snapshot.
func publishing(snapshot *domain.TrendingSnapshot, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(newSnapshotMessage(snapshot, now))
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal message: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         messageType,
		Headers:      amqp.Table{"region": snapshot.Region},
		Body:         body,
		Timestamp:    now,
	}, nil
}

func (r *RabbitMQ) Publish(ctx context.Context, snapshot *domain.TrendingSnapshot) error {
	msg, err := publishing(snapshot, time.Now())
	if err != nil {
		return err
	}

	err = r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish snapshot %s: %w", snapshot.Region, err)
	}

	r.logger.Debug("published snapshot",
		"region", snapshot.Region,
		"videos", len(snapshot.Videos),
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
