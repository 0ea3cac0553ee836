package domain

import "time"

type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Destination struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	BasePrice float64   `json:"base_price,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
