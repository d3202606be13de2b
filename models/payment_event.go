package models

import "time"

// PaymentEvent is published to Kafka/SNS once a payment reaches a terminal
// outcome, for downstream consumers (mail, analytics).
type PaymentEvent struct {
	Type      string    `json:"type"` // "payment_succeeded" | "payment_failed"
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	PaymentID string    `json:"payment_id,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
