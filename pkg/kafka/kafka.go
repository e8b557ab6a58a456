package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	ReservationTopic = "reservation-events"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Topic string   `yaml:"topic" envconfig:"KAFKA_TOPIC" default:"reservation-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventRequested EventType = "REQUESTED"
	EventUpdated   EventType = "UPDATED"
	EventDeleted   EventType = "DELETED"
)

// EventReservation is the message written to the reservation topic.
type EventReservation struct {
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservationId"`
	Status        string    `json:"status"`
	Field         string    `json:"field,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
