package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product with this title already exists")

// Product is a catalog entry. The title doubles as the product's natural key:
// lookups, cart adds, and deletions all address products by title,
// case-insensitively.
type Product struct {
	ID          string  `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
}
