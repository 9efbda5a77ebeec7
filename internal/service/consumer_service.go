package service

import (
	"context"
	"encoding/json"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/internal/repository/cache"
	"industrial-site-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventSink receives content events for external consumers (NATS JetStream in production).
type EventSink interface {
	Publish(ctx context.Context, event events.Event) error
}

// ContentNotifier fans a content change out to connected admin sessions.
type ContentNotifier interface {
	NotifyContentChanged(evt events.ContentChanged)
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	pageCache  cache.PageCache
	sink       EventSink
	notifier   ContentNotifier
	metrics    *metrics.Registry
	logger     logger.ILogger
}

// NewConsumerService wires the content event consumer. sink and notifier may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	pageCache cache.PageCache,
	sink EventSink,
	notifier ContentNotifier,
	m *metrics.Registry,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		pageCache:  pageCache,
		sink:       sink,
		notifier:   notifier,
		metrics:    m,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var evt events.ContentChanged
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("EVENTS", "Failed to decode content event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Undecodable messages would be redelivered forever.
		msg.Ack()
		return
	}

	cs.pageCache.Invalidate(ctx, evt.Kind, evt.Slug, evt.PreviousSlug)

	if cs.sink != nil {
		if err := cs.sink.Publish(ctx, evt); err != nil {
			cs.logger.Warn("EVENTS", "Failed to forward content event", map[string]interface{}{
				"kind":  evt.Kind,
				"id":    evt.ID,
				"error": err.Error(),
			})
		}
	}

	if cs.notifier != nil {
		cs.notifier.NotifyContentChanged(evt)
	}

	if cs.metrics != nil {
		cs.metrics.ContentEvents.WithLabelValues(string(evt.Action)).Inc()
	}

	cs.logger.Debug("EVENTS", "Content event processed", map[string]interface{}{
		"kind":   evt.Kind,
		"id":     evt.ID,
		"slug":   evt.Slug,
		"action": string(evt.Action),
	})
	msg.Ack()
}
