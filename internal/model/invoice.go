package model

import "time"

// Invoice is a billing record tied to a user. TotalPrice is stored as
// DECIMAL(10,2) and carried as a string to avoid float rounding in money.
type Invoice struct {
	ID            uint64    `json:"id"`             // invoice.id
	Date          time.Time `json:"date"`           // invoice.date
	TotalPrice    string    `json:"total_price"`    // invoice.total_price (decimal)
	PaymentMethod string    `json:"payment_method"` // invoice.payment_method
	UserID        uint64    `json:"user_id"`        // invoice.user_id -> user.id
}
