package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CountsTowardEarnings reports whether bookings in this status accrue
// provider earnings.
func (s BookingStatus) CountsTowardEarnings() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCompleted
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	SchoolID      *int64        `json:"school_id,omitempty"`
	DestinationID int64         `json:"destination_id"`
	Status        BookingStatus `json:"status"`
	TripDate      time.Time     `json:"trip_date"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BookingService is one service line of a booking, referencing a provider by
// (service_type, service_id). Line status is implicit via the parent booking.
type BookingService struct {
	ID          int64       `json:"id"`
	BookingID   int64       `json:"booking_id"`
	ServiceType ServiceType `json:"service_type"`
	ServiceID   int64       `json:"service_id"`
	Quantity    int         `json:"quantity"`
	Days        int         `json:"days"`
	BookedPrice float64     `json:"booked_price"`
}

// Amount is the line total: quantity x days x booked price.
func (s *BookingService) Amount() float64 {
	return float64(s.Quantity) * float64(s.Days) * s.BookedPrice
}

// ProviderEarning is one earning line for a provider: a booking service line
// joined to its parent booking, restricted to confirmed/completed bookings.
type ProviderEarning struct {
	BookingID        int64         `json:"booking_id"`
	BookingServiceID int64         `json:"booking_service_id"`
	BookingStatus    BookingStatus `json:"booking_status"`
	TripDate         time.Time     `json:"trip_date"`
	Quantity         int           `json:"quantity"`
	Days             int           `json:"days"`
	BookedPrice      float64       `json:"booked_price"`
}

func (e *ProviderEarning) Amount() float64 {
	return float64(e.Quantity) * float64(e.Days) * e.BookedPrice
}
