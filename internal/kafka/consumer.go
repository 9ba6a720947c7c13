package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads data-quality issue events from the quality topic and hands
// the decoded events to a handler.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads until the context is canceled or the handler fails. Messages
// that do not decode as QualityIssueEvent are skipped; one bad producer must
// not wedge the notification loop.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, QualityIssueEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := DecodeQualityIssueEvent(msg.Value)
		if err != nil {
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

// DecodeQualityIssueEvent parses a quality-topic payload.
func DecodeQualityIssueEvent(payload []byte) (QualityIssueEvent, error) {
	var event QualityIssueEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return QualityIssueEvent{}, fmt.Errorf("decode quality issue event: %w", err)
	}
	return event, nil
}
