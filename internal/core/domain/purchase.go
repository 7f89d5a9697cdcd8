package domain

import "time"

// Purchase records a completed checkout: the cart contents at checkout time
// plus the derived total.
type Purchase struct {
	ID       string      `json:"id,omitempty" bson:"_id,omitempty"`
	Username string      `json:"username" bson:"username"`
	Items    []CartEntry `json:"items" bson:"items"`
	Total    float64     `json:"total" bson:"total"`
	Datetime time.Time   `json:"datetime" bson:"datetime"`
}
