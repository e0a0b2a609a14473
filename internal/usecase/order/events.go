package usecase

import (
	"encoding/json"

	"github.com/rosemall/flash-order-service/internal/domain"
	publisher "github.com/rosemall/flash-order-service/internal/infrastructure/kafka"
)

func publishEvent(pub domain.MessagePublisher, topic string, event publisher.OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(topic, domain.Message{Key: []byte(event.UserID), Value: value})
}
