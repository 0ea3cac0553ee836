package domain

import "time"

type DealType string

const (
	DealTypeDirect       DealType = "direct"
	DealTypeIntermediary DealType = "intermediary"
)

type DealStatus string

const (
	DealStatusActive    DealStatus = "active"
	DealStatusCompleted DealStatus = "completed"
	DealStatusCancelled DealStatus = "cancelled"
)

type Deal struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customer_id"`
	SellerID   *int64     `json:"seller_id,omitempty"` // set for intermediary deals
	Title      string     `json:"title"`
	Amount     float64    `json:"amount"`
	DealType   DealType   `json:"deal_type"`
	Status     DealStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
