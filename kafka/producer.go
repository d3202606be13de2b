package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TrungQuaan22/ProjectIII-Elearning/logger"
	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

// PaymentEventProducer publishes payment outcomes to a Kafka topic, keyed by
// order id so events for one order stay ordered.
type PaymentEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewPaymentEventProducer(brokers []string, topic string) *PaymentEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &PaymentEventProducer{writer: w, topic: topic}
}

func (p *PaymentEventProducer) PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	logger.Log.Info("Payment event published",
		zap.String("order_id", event.OrderID),
		zap.String("type", event.Type),
		zap.String("topic", p.topic),
	)
	return nil
}

func (p *PaymentEventProducer) Close() error {
	return p.writer.Close()
}
