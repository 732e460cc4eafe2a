package models

type Order struct {
	ID         int `json:"id"`
	CustomerID int `json:"customer_id"`
	ItemID     int `json:"item_id"`
	Quantity   int `json:"quantity"`
}

// OrderDetail is the read representation of an order: the customer and
// item ids are resolved to their current names at read time.
type OrderDetail struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	ItemName     string `json:"item_name"`
	Quantity     int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID int `json:"customer_id"`
	ItemID     int `json:"item_id"`
	Quantity   int `json:"quantity"`
}

type BulkOrderRequest struct {
	Items []CreateOrderRequest `json:"items" binding:"required"`
}

// BulkOrderFailure reports one rejected row of a bulk request, by its
// position in the original items list.
type BulkOrderFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}
