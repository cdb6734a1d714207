// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckoutCreatedEvent is published when a checkout is successfully
// persisted. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type CheckoutCreatedEvent struct {
	CheckoutID  uint64 `json:"checkout_id"`
	UserID      uint64 `json:"user_id"`
	RecycleType string `json:"recycle_type"`
	Quantity    int    `json:"quantity"`
	Total       int    `json:"total"`
	Address     string `json:"address"`
	PaymentType string `json:"payment_type"`
	CreatedAt   string `json:"created_at"`
}
