package consumer

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

// NotificationConsumer drains order.created events and emits a
// notification line per order.
type NotificationConsumer struct{}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{}
}

// ProcessOrderCreated handles order.created events until the channel
// closes, acking each processed message. Malformed payloads are nacked
// without requeue.
func (c *NotificationConsumer) ProcessOrderCreated(messages <-chan amqp.Delivery) {
	for msg := range messages {
		var event models.OrderCreatedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.Printf("❌ Failed to parse event: %v", err)
			msg.Nack(false, false)
			continue
		}

		log.Printf("📨 Order #%d confirmed: customer %d ordered %d of item %d",
			event.OrderID, event.CustomerID, event.Quantity, event.ItemID)

		msg.Ack(false)
	}
}
