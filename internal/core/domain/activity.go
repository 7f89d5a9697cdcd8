package domain

import "time"

// ActivityRecord is one append-only audit entry. Immutable once written.
type ActivityRecord struct {
	Timestamp time.Time `json:"datetime" bson:"datetime"`
	Username  string    `json:"username" bson:"username"`
	Activity  string    `json:"activity" bson:"activity"`
}
