package models

type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type CreateItemRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type UpdateItemRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
