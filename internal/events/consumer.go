package events

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Consumer reads committed order events from Kafka and feeds the broadcaster.
// Events only ever reach the topic after the originating transaction
// committed, so everything arriving here describes durable state.
type Consumer struct {
	reader      *kafka.Reader
	broadcaster *Broadcaster
}

func NewConsumer(reader *kafka.Reader, broadcaster *Broadcaster) *Consumer {
	return &Consumer{reader: reader, broadcaster: broadcaster}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.broadcaster.Publish(string(msg.Value))
	}
}
