package model

import "time"

// Banner is stored in redis keyed by slot, not in the relational database.
type Banner struct {
	Slot      string    `json:"slot"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
