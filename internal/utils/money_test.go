package utils

import (
	"testing"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTotalPaymentAmount(t *testing.T) {
	tests := []struct {
		name      string
		payments  []domain.BillPayment
		direction domain.BillDirection
		want      float64
	}{
		{
			name:      "single cash leg positive",
			payments:  []domain.BillPayment{{CashAmount: 300}},
			direction: domain.BillDirectionPositive,
			want:      300,
		},
		{
			name: "all fields summed",
			payments: []domain.BillPayment{{
				CashAmount:     100,
				VisaAmount:     50,
				BankAmount:     25,
				CheckAmount:    10,
				TransferAmount: 10,
				OnlineAmount:   5,
			}},
			direction: domain.BillDirectionPositive,
			want:      200,
		},
		{
			name: "multiple legs accumulate",
			payments: []domain.BillPayment{
				{CashAmount: 100},
				{VisaAmount: 250, CheckAmount: 50},
			},
			direction: domain.BillDirectionPositive,
			want:      400,
		},
		{
			name:      "negative direction flips the aggregate",
			payments:  []domain.BillPayment{{CashAmount: 120, BankAmount: 80}},
			direction: domain.BillDirectionNegative,
			want:      -200,
		},
		{
			name:      "component signs are ignored, positive direction",
			payments:  []domain.BillPayment{{CashAmount: -100, VisaAmount: 50}},
			direction: domain.BillDirectionPositive,
			want:      150,
		},
		{
			name:      "component signs are ignored, negative direction",
			payments:  []domain.BillPayment{{CashAmount: -100, TransferAmount: -40}},
			direction: domain.BillDirectionNegative,
			want:      -140,
		},
		{
			name:      "no legs",
			payments:  nil,
			direction: domain.BillDirectionPositive,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPaymentAmount(tt.payments, tt.direction)
			assert.Equal(t, tt.want, got)
			if tt.direction == domain.BillDirectionNegative {
				assert.LessOrEqual(t, got, 0.0)
			} else {
				assert.GreaterOrEqual(t, got, 0.0)
			}
		})
	}
}

func TestBookingLineAmount(t *testing.T) {
	assert.Equal(t, 1500.0, BookingLineAmount(2, 3, 250))
	assert.Equal(t, 0.0, BookingLineAmount(0, 5, 100))
	assert.Equal(t, 99.5, BookingLineAmount(1, 1, 99.5))
}
