package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type PayoutHandler struct {
	payoutSvc service.PayoutService
}

func NewPayoutHandler(payoutSvc service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc}
}

// List filters by optional type and status query parameters.
func (h *PayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	payoutType := domain.PayoutType(r.URL.Query().Get("type"))
	status := domain.PayoutStatus(r.URL.Query().Get("status"))
	page, pageSize := pagination(r)

	payouts, total, err := h.payoutSvc.ListPayouts(r.Context(), payoutType, status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: payouts, TotalCount: total})
}

type createPaymentRequest struct {
	Method    domain.PaymentMethod `json:"method"`
	Reference string               `json:"reference"`
	Notes     string               `json:"notes"`
}

// CreatePayment promotes a booking-type payout row into a paid payment row.
func (h *PayoutHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid payout id")
		return
	}
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payment, err := h.payoutSvc.CreatePaymentFromBookingRecord(r.Context(), id, service.PaymentDetails{
		Method:    req.Method,
		Reference: req.Reference,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}
