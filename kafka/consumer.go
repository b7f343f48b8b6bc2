package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayse/sweetshop/pkg/logger"
)

// MovementHandler handles a consumed stock movement event
type MovementHandler func(ctx context.Context, event StockMovementEvent) error

// Consumer wraps a Kafka consumer group subscribed to stock movements
type Consumer struct {
	consumer sarama.ConsumerGroup
	groupID  string
	handler  MovementHandler
}

// NewConsumer creates a new Kafka consumer for the stock movements topic
func NewConsumer(brokers []string, groupID string, handler MovementHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Str("topic", TopicStockMovements).
		Msg("Kafka consumer initialized")

	return &Consumer{consumer: consumer, groupID: groupID, handler: handler}, nil
}

// Start begins consuming until the context is cancelled
func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Logger.Info().Msg("Consumer context cancelled, stopping")
				return
			default:
				if err := c.consumer.Consume(ctx, []string{TopicStockMovements}, &groupHandler{c: c}); err != nil {
					logger.Logger.Error().Err(err).Msg("Error from consumer")
				}
			}
		}
	}()

	go func() {
		for err := range c.consumer.Errors() {
			logger.Logger.Error().Err(err).Msg("Consumer error")
		}
	}()
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.consumer != nil {
		return c.consumer.Close()
	}
	return nil
}

type groupHandler struct {
	c *Consumer
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *groupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	// Continue the producer's trace from the message headers
	carrier := propagation.MapCarrier{}
	for _, header := range message.Headers {
		key := string(header.Key)
		if key == "traceparent" || key == "tracestate" {
			carrier[key] = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume.stock_movement",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
		),
	)
	defer span.End()

	var event StockMovementEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to unmarshal event")
		logger.Logger.Error().Err(err).Msg("Failed to unmarshal stock movement event")
		return
	}

	span.SetAttributes(
		attribute.String("event.type", event.EventType),
		attribute.String("event.id", event.EventID),
		attribute.Int("sweet.id", int(event.SweetID)),
	)

	if err := h.c.handler(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to handle event")
		logger.Logger.Error().
			Err(err).
			Str("event_type", event.EventType).
			Str("event_id", event.EventID).
			Msg("Failed to handle stock movement event")
		return
	}

	logger.Logger.Debug().
		Str("event_type", event.EventType).
		Str("event_id", event.EventID).
		Uint("sweet_id", event.SweetID).
		Int("stock_after", event.StockAfter).
		Msg("Stock movement event handled")
}
