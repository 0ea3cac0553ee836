package domain

import "time"

type CustomerType string

const (
	CustomerTypeSchool       CustomerType = "school"
	CustomerTypeIntermediary CustomerType = "intermediary"
	CustomerTypeIndividual   CustomerType = "individual"
)

type Customer struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	CustomerType CustomerType `json:"customer_type"`
	// Balance is a signed running total. It is mutated only through the
	// ledger service; nothing recomputes it from the transaction log.
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
