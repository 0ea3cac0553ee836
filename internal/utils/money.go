package utils

import (
	"math"

	"github.com/mhr996/school-dash-backend/internal/domain"
)

// TotalPaymentAmount sums the typed payment fields of a bill's payment legs
// and applies the bill direction. Component amounts are treated as
// magnitudes: the result is non-negative for a positive bill and
// non-positive for a negative one, regardless of the signs supplied.
func TotalPaymentAmount(payments []domain.BillPayment, direction domain.BillDirection) float64 {
	var total float64
	for _, p := range payments {
		total += math.Abs(p.CashAmount) +
			math.Abs(p.VisaAmount) +
			math.Abs(p.BankAmount) +
			math.Abs(p.CheckAmount) +
			math.Abs(p.TransferAmount) +
			math.Abs(p.OnlineAmount)
	}
	if direction == domain.BillDirectionNegative {
		return -total
	}
	return total
}

// BookingLineAmount is the total for one booking service line.
func BookingLineAmount(quantity, days int, bookedPrice float64) float64 {
	return float64(quantity) * float64(days) * bookedPrice
}
