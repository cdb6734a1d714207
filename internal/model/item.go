package model

// Item is a catalog entry for a recyclable good.
type Item struct {
	ID          uint64 `json:"id"`          // item.id
	Name        string `json:"name"`        // item.name
	Description string `json:"description"` // item.description
	Price       int    `json:"price"`       // item.price
}
