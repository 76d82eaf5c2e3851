package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/pubsub"
)

// NotificationService pushes applicant-facing status messages to the
// notification topic. Delivery to the beneficiary's phone is handled
// downstream.
type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyApplicant publishes the status message for an application.
func (h *NotificationService) NotifyApplicant(ctx context.Context, beneficiaryID, applicationID, status, message string) error {
	if h.pubsubPublisher == nil {
		logger.Debug(ctx, "Notification publisher disabled, skipping notification for %s", applicationID)
		return nil
	}

	payload := models.NotificationMessage{
		BeneficiaryID: beneficiaryID,
		ApplicationID: applicationID,
		Status:        status,
		Message:       message,
		SentAt:        time.Now().UTC(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "Failed to marshal notification payload: %v", err)
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	topicName := configs.PUBSUB_NOTIFICATION_TOPIC

	// Separate context so an aborted request does not cancel delivery.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, map[string]string{
		"beneficiaryId": beneficiaryID,
		"status":        status,
	})
	if err != nil {
		logger.Error(ctx, "Failed to publish notification to PubSub topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Published notification for application %s with message ID: %s", applicationID, messageID)
	return nil
}
