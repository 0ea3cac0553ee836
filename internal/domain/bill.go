package domain

import "time"

type BillDirection string

const (
	BillDirectionPositive BillDirection = "positive"
	BillDirectionNegative BillDirection = "negative"
)

type BillStatus string

const (
	BillStatusDraft  BillStatus = "draft"
	BillStatusIssued BillStatus = "issued"
	BillStatusVoided BillStatus = "voided"
)

type Bill struct {
	ID          int64         `json:"id"`
	CustomerID  int64         `json:"customer_id"`
	DealID      *int64        `json:"deal_id,omitempty"`
	Direction   BillDirection `json:"bill_direction"`
	Status      BillStatus    `json:"status"`
	Description string        `json:"description"`
	ReceiptKey  string        `json:"receipt_key,omitempty"` // storage key of the scanned receipt
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BillPayment is one typed payment leg of a bill. The component amounts are
// magnitudes; only the bill-level direction decides the sign applied to the
// customer balance.
type BillPayment struct {
	ID             int64     `json:"id"`
	BillID         int64     `json:"bill_id"`
	CashAmount     float64   `json:"cash_amount"`
	VisaAmount     float64   `json:"visa_amount"`
	BankAmount     float64   `json:"bank_amount"`
	CheckAmount    float64   `json:"check_amount"`
	TransferAmount float64   `json:"transfer_amount"`
	OnlineAmount   float64   `json:"online_amount"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
