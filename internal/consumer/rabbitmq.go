// Package consumer receives job requests from RabbitMQ and hands each one
// to the orchestrator on its own goroutine. The admission layer publishes
// to the intake queue and never blocks on job completion.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"podcast_producer/internal/domain"
)

// Runner executes one job to a terminal status.
type Runner interface {
	Run(ctx context.Context, req domain.JobRequest)
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	runner  Runner
	logger  *slog.Logger
}

func NewRabbitMQ(cfg Config, runner Runner, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("consuming job requests",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
		runner:  runner,
		logger:  logger,
	}, nil
}

// Start consumes deliveries until the context is cancelled or the channel
// closes. Each valid request runs on its own goroutine; the delivery is
// acked once the job reaches a terminal status.
func (r *RabbitMQ) Start(ctx context.Context) error {
	deliveries, err := r.channel.Consume(
		r.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			r.handle(ctx, d)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, d amqp.Delivery) {
	var req domain.JobRequest
	if err := json.Unmarshal(d.Body, &req); err != nil {
		r.logger.Error("malformed job request, dropping", "error", err)
		_ = d.Nack(false, false)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	r.logger.Info("accepted job request", "job_id", req.ID)

	go func() {
		r.runner.Run(ctx, req)
		if err := d.Ack(false); err != nil {
			r.logger.Warn("ack failed", "job_id", req.ID, "error", err)
		}
	}()
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
