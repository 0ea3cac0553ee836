package domain

import "time"

// ServiceType is the closed set of provider kinds. Each kind lives in its own
// physical table with an overlapping schema; the provider repository owns the
// type-to-table mapping so no caller re-derives it.
type ServiceType string

const (
	ServiceTypeGuide         ServiceType = "guide"
	ServiceTypeParamedic     ServiceType = "paramedic"
	ServiceTypeSecurity      ServiceType = "security"
	ServiceTypeEntertainment ServiceType = "entertainment"
	ServiceTypeTravelCompany ServiceType = "travel_company"
)

// ServiceTypes lists every valid service type, in display order.
var ServiceTypes = []ServiceType{
	ServiceTypeGuide,
	ServiceTypeParamedic,
	ServiceTypeSecurity,
	ServiceTypeEntertainment,
	ServiceTypeTravelCompany,
}

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeGuide, ServiceTypeParamedic, ServiceTypeSecurity,
		ServiceTypeEntertainment, ServiceTypeTravelCompany:
		return true
	}
	return false
}

type ProviderStatus string

const (
	ProviderStatusActive    ProviderStatus = "active"
	ProviderStatusInactive  ProviderStatus = "inactive"
	ProviderStatusSuspended ProviderStatus = "suspended"
)

type ServiceProvider struct {
	ID          int64          `json:"id"`
	ServiceType ServiceType    `json:"service_type"`
	Name        string         `json:"name"`
	UserID      *int64         `json:"user_id,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Email       string         `json:"email,omitempty"`
	DailyRate   float64        `json:"daily_rate,omitempty"`
	Status      ProviderStatus `json:"status"`
	DocumentKey string         `json:"document_key,omitempty"` // storage key of license/contract scan
	CreatedAt   time.Time      `json:"created_at"`
}

// ProviderBalance is a point-in-time snapshot of what the platform owes a
// provider. It is computed on demand and never persisted.
type ProviderBalance struct {
	ServiceType     ServiceType `json:"service_type"`
	ServiceID       int64       `json:"service_id"`
	ProviderName    string      `json:"provider_name"`
	TotalEarned     float64     `json:"total_earned"`
	TotalPaidOut    float64     `json:"total_paid_out"`
	NetBalance      float64     `json:"net_balance"` // earned - paid; positive means the platform owes the provider
	BookingCount    int         `json:"booking_count"`
	PayoutCount     int         `json:"payout_count"`
	LastBookingDate *time.Time  `json:"last_booking_date,omitempty"`
}
