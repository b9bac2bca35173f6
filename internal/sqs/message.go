package sqs

// Product notification actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ProductMessage represents a message about a product change.
type ProductMessage struct {
	Action    string  `json:"action"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}
