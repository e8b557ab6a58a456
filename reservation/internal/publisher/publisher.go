package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/restaurant-reservation/pkg/circuit_breaker"
	"github.com/Astemirdum/restaurant-reservation/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Publisher writes reservation lifecycle events to kafka.
// Failures are logged and swallowed.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func New(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	if topic == "" {
		topic = kafka.ReservationTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		log:      log.Named("publisher"),
	}
}

func (p *Publisher) Publish(_ context.Context, event kafka.EventReservation) {
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ReservationID),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		p.log.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.String("reservationId", event.ReservationID),
			zap.Error(err))
		return
	}
	p.log.Debug("event published", zap.String("type", string(event.Type)), zap.String("reservationId", event.ReservationID))
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
