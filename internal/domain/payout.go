package domain

import "time"

// PayoutType discriminates the two logical record kinds sharing the payouts
// table: a booking-type row is an accrued-but-unpaid obligation, a
// payment-type row is the actual disbursement.
type PayoutType string

const (
	PayoutTypeBooking PayoutType = "booking"
	PayoutTypePayment PayoutType = "payment"
)

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusPaid      PayoutStatus = "paid"
	PayoutStatusCancelled PayoutStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCheck    PaymentMethod = "check"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type Payout struct {
	ID             int64        `json:"id"`
	Type           PayoutType   `json:"type"`
	Status         PayoutStatus `json:"status"`
	ServiceType    ServiceType  `json:"service_type"`
	ServiceID      int64        `json:"service_id"`
	ProviderName   string       `json:"provider_name"`
	ProviderUserID *int64       `json:"provider_user_id,omitempty"`
	Amount         float64      `json:"amount"`

	// Set on booking-type rows.
	BookingID        *int64 `json:"booking_id,omitempty"`
	BookingServiceID *int64 `json:"booking_service_id,omitempty"`

	// Set on payment-type rows: the booking-type row this payment settles.
	BookingRecordID *int64 `json:"booking_record_id,omitempty"`

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Reference     string        `json:"reference,omitempty"` // check number / transfer reference
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
