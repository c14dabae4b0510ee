package models

import "time"

// FoundItem represents a report of a found belonging.
type FoundItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color,omitempty"`
	Brand          string    `json:"brand,omitempty"`
	UniqueID       string    `json:"uniqueId,omitempty"`
	DateFound      string    `json:"dateFound"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	OwnerUserID    string    `json:"ownerUserId"`
	Status         string    `json:"status"`
	ClaimedByEmail string    `json:"claimedByEmail,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
