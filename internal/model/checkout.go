package model

// Checkout records a recycling drop-off order. Field names follow the
// persisted schema (recycle_type, payment_type) throughout.
type Checkout struct {
	ID          uint64 `json:"id"`           // checkout.id
	UserID      uint64 `json:"user_id"`      // checkout.user_id -> user.id
	RecycleType string `json:"recycle_type"` // checkout.recycle_type
	Quantity    int    `json:"quantity"`     // checkout.quantity
	Total       int    `json:"total"`        // checkout.total
	Address     string `json:"address"`      // checkout.address
	PaymentType string `json:"payment_type"` // checkout.payment_type
}
