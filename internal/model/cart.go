package model

// Cart is a single cart entry owned by a user. UserID is always taken from
// the authenticated identity that created the entry, never from client input.
type Cart struct {
	ID          uint64 `json:"id"`           // cart.id
	ItemID      uint64 `json:"item_id"`      // cart.item_id (catalog item)
	Price       int    `json:"price"`        // cart.price
	Quantity    int    `json:"quantity"`     // cart.quantity
	Total       int    `json:"total"`        // cart.total
	RecycleType string `json:"recycle_type"` // cart.recycle_type
	UserID      uint64 `json:"user_id"`      // cart.user_id -> user.id
}
