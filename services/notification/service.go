package notification

import (
	"encoding/json"
	"fmt"

	"medibook/config"
	"medibook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

// AsynqNotificationService enqueues notification tasks on the Redis-backed
// queue; the worker in cron/ performs the actual delivery.
type AsynqNotificationService struct {
	client *asynq.Client
}

// NewAsynqNotificationService constructs the production notifier.
func NewAsynqNotificationService() *AsynqNotificationService {
	return &AsynqNotificationService{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisNotifyDB,
		}),
	}
}

// Notify enqueues a notification task for the user.
func (s *AsynqNotificationService) Notify(userID, message string, metadata map[string]string) error {
	payload := models.BookingNotification{
		UserID:   userID,
		Message:  message,
		Metadata: metadata,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	if _, err := s.client.Enqueue(asynq.NewTask(TypeBookingNotify, b)); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
