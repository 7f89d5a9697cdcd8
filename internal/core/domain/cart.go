package domain

import "errors"

var ErrCartItemNotFound = errors.New("cart item not found")
var ErrEmptyCart = errors.New("cart is empty")

// CartEntry is a point-in-time snapshot of a catalog product, copied into the
// cart at add time. There is no foreign key back to the catalog: later edits
// or deletions of the product leave existing cart entries untouched.
//
// Quantity is not stored. Adding the same product twice produces two entries;
// consumers derive quantities by grouping on title.
type CartEntry struct {
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
}

// Snapshot copies the catalog fields of p into a new CartEntry.
func Snapshot(p *Product) CartEntry {
	return CartEntry{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
}
