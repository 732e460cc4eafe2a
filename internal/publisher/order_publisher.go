package publisher

import (
	"encoding/json"
	"fmt"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/messaging"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

const OrderCreatedQueue = "order.created"

type OrderPublisher struct {
	mq *messaging.RabbitMQ
}

func NewOrderPublisher(mq *messaging.RabbitMQ) (*OrderPublisher, error) {
	if err := mq.DeclareQueue(OrderCreatedQueue); err != nil {
		return nil, err
	}

	return &OrderPublisher{mq: mq}, nil
}

// PublishOrderCreated publishes an order.created event for a persisted
// order. Bulk imports publish one event per created row.
func (p *OrderPublisher) PublishOrderCreated(order *models.Order) error {
	event := models.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		ItemID:     order.ItemID,
		Quantity:   order.Quantity,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.mq.Publish(OrderCreatedQueue, data)
}
