package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"forumpm/internal/domain"
)

// KafkaNotifier publishes message-sent events keyed by recipient, so a
// downstream consumer can fan out per-user notifications in order.
type KafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

type messageSentEvent struct {
	MessageID string    `json:"message_id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Title     string    `json:"title"`
	SentAt    time.Time `json:"sent_at"`
}

func (n *KafkaNotifier) MessageSent(ctx context.Context, msg *domain.Message) error {
	event := messageSentEvent{
		MessageID: msg.ID,
		Sender:    msg.Sender,
		Recipient: msg.Recipient,
		Title:     msg.Title,
	}
	if msg.SentAt != nil {
		event.SentAt = *msg.SentAt
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Recipient),
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error { return n.w.Close() }
