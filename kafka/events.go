package kafka

import "time"

// StockMovementEvent is emitted after a ledger mutation commits. The catalog
// service consumes it to refresh the denormalized browse quantity.
type StockMovementEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	TransactionID uint      `json:"transaction_id"`
	SweetID       uint      `json:"sweet_id"`
	UserID        uint      `json:"user_id"`
	Quantity      int       `json:"quantity"`
	StockAfter    int       `json:"stock_after"`
	Value         *float64  `json:"value,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockPurchased = "stock.purchased"
	EventTypeStockRestocked = "stock.restocked"
)

// Kafka topics
const (
	TopicStockMovements = "stock-movements"
)
