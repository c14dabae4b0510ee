package models

import "time"

// Item status values. Status starts at StatusActive and only ever moves to
// StatusClaimed.
const (
	StatusActive  = "active"
	StatusClaimed = "claimed"
)

// DefaultCategory is applied when a report omits the category.
const DefaultCategory = "Bag"

// LostItem represents a report of a lost belonging.
type LostItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	UniqueID     string    `json:"uniqueId,omitempty"`
	DateLost     string    `json:"dateLost"`
	TimeLost     string    `json:"timeLost"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	OwnerUserID  string    `json:"ownerUserId"`
	Status       string    `json:"status"`
	FoundByEmail string    `json:"foundByEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
