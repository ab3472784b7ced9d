package events

import (
	"context"
	"encoding/json"

	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/segmentio/kafka-go"
)

// Producer publishes checkout events to Kafka.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{writer: writer, topic: topic}
}

// PublishPaymentRecorded emits one message per committed checkout, keyed by
// the payer email so a consumer sees a user's payments in order.
func (p *Producer) PublishPaymentRecorded(ctx context.Context, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
