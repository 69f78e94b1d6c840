package model

// Item is an inventory entry.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Quantity *int   `json:"quantity" validate:"required,gte=0,lte=2147483647"`
}

type UpdateItemRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0,lte=2147483647"`
}
