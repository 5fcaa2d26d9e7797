package services

import (
	"context"
	"encoding/json"
	"time"

	"order-management-service/models"
	aws_pkg "order-management-service/pkg/aws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventNotifier publishes entity change events to SNS. A nil notifier, a nil
// publisher or an empty topic turn Notify into a no-op.
type EventNotifier struct {
	publisher aws_pkg.SNSPublisher
	topicArn  string
	logger    *zap.Logger
}

func NewEventNotifier(publisher aws_pkg.SNSPublisher, topicArn string, logger *zap.Logger) *EventNotifier {
	return &EventNotifier{publisher: publisher, topicArn: topicArn, logger: logger}
}

// Notify never fails the caller; publish errors are only logged.
func (n *EventNotifier) Notify(ctx context.Context, eventType, entity string, id uint) {
	if n == nil || n.publisher == nil || n.topicArn == "" {
		return
	}
	event := models.EntityChangedEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Entity:    entity,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	}
	b, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to marshal SNS event", zap.Error(err))
		return
	}
	if err := n.publisher.Publish(ctx, n.topicArn, b); err != nil {
		n.logger.Error("Failed to publish SNS event",
			zap.Error(err),
			zap.String("entity", entity),
			zap.Uint("entity_id", id),
		)
		return
	}
	n.logger.Debug("Published SNS event", zap.String("event_type", eventType), zap.String("entity", entity))
}
