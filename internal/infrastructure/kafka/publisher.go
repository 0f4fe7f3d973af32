package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher feeds the notification/chat services consuming status changes.
// Publishing is fire-and-forget from the usecases and never gates a transition.
type Publisher interface {
	PublishOrder(event OrderEvent) error
	PublishDispute(event DisputeEvent) error
}

type KafkaPublisher struct {
	orderWriter   *kafka.Writer
	disputeWriter *kafka.Writer
}

func NewKafkaPublisher(brokers []string, orderTopic, disputeTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		orderWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    orderTopic,
			Balancer: &kafka.LeastBytes{},
		},
		disputeWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    disputeTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishOrder(event OrderEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.orderWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.OrderID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishDispute(event DisputeEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.disputeWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.OrderID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	if err := k.orderWriter.Close(); err != nil {
		return err
	}
	return k.disputeWriter.Close()
}
