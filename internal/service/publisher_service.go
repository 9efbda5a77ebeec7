package service

import (
	"context"
	"encoding/json"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const ContentChangedTopic = "content.changed"

type IPublisherService interface {
	// PublishContentChanged is best-effort: failures are logged and never returned.
	PublishContentChanged(ctx context.Context, kind string, id uuid.UUID, slug, previousSlug string, action events.Action)
}

type publisherService struct {
	publisher message.Publisher
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
		logger:    log,
	}
}

func (s *publisherService) PublishContentChanged(ctx context.Context, kind string, id uuid.UUID, slug, previousSlug string, action events.Action) {
	evt := events.NewContentChanged(kind, id.String(), slug, action)
	if previousSlug != slug {
		evt.PreviousSlug = previousSlug
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("EVENTS", "Failed to encode content event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("EVENTS", "Failed to publish content event", map[string]interface{}{
			"kind":   kind,
			"id":     id.String(),
			"action": string(action),
			"error":  err.Error(),
		})
	}
}
