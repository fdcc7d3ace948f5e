package repository

import (
	"context"
	"fmt"
	"time"

	"SignalDesk/internal/domain/models"
	pkgkafka "SignalDesk/pkg/kafka"
	applogger "SignalDesk/pkg/logger"
)

// KafkaStatsPublisher emits batch statistics to a Kafka topic, keyed by venue
// so downstream consumers see per-venue ordering.
type KafkaStatsPublisher struct {
	producer *pkgkafka.Producer
	topic    string
	l        *applogger.Logger
}

func NewKafkaStatsPublisher(producer *pkgkafka.Producer, topic string, l *applogger.Logger) *KafkaStatsPublisher {
	return &KafkaStatsPublisher{producer: producer, topic: topic, l: l}
}

type statsEvent struct {
	Venue      string                       `json:"venue"`
	Date       string                       `json:"date"`
	Statistics models.SignalBatchStatistics `json:"statistics"`
	EmittedAt  time.Time                    `json:"emitted_at"`
}

func (p *KafkaStatsPublisher) Publish(ctx context.Context, venue models.Venue, date string, stats models.SignalBatchStatistics) error {
	event := statsEvent{
		Venue:      string(venue),
		Date:       date,
		Statistics: stats,
		EmittedAt:  time.Now().UTC(),
	}
	if err := p.producer.Publish(ctx, p.topic, []byte(venue), event); err != nil {
		return fmt.Errorf("publish stats: %w", err)
	}
	p.l.Debug("stats published",
		applogger.String("topic", p.topic),
		applogger.String("venue", string(venue)),
		applogger.String("date", date),
	)
	return nil
}

func (p *KafkaStatsPublisher) Close() error {
	return p.producer.Close()
}

// NoopStatsPublisher is used when Kafka is disabled.
type NoopStatsPublisher struct{}

func (NoopStatsPublisher) Publish(context.Context, models.Venue, string, models.SignalBatchStatistics) error {
	return nil
}

func (NoopStatsPublisher) Close() error { return nil }
