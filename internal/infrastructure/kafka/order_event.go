package kafka

import (
	"time"
)

// OrderEvent is published on every lifecycle transition.
type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     string    `json:"user_id"`
	ProductID  string    `json:"product_id"`
	Status     string    `json:"status"`
	Price      string    `json:"price"`
	Transition string    `json:"transition"`
	OccurredAt time.Time `json:"occurred_at"`
}
