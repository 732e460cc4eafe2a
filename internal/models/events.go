package models

// OrderCreatedEvent is published when a new order is persisted.
type OrderCreatedEvent struct {
	OrderID    int `json:"order_id"`
	CustomerID int `json:"customer_id"`
	ItemID     int `json:"item_id"`
	Quantity   int `json:"quantity"`
}
