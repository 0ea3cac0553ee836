package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookingRequest struct {
	domain.Booking
	Services []domain.BookingService `json:"services"`
}

type bookingResponse struct {
	Booking  *domain.Booking         `json:"booking"`
	Services []domain.BookingService `json:"services"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == 0 || req.DestinationID == 0 {
		respondError(w, http.StatusBadRequest, "customer_id and destination_id are required")
		return
	}
	if err := h.bookingSvc.CreateBooking(r.Context(), &req.Booking, req.Services); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bookingResponse{Booking: &req.Booking, Services: req.Services})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, services, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookingResponse{Booking: booking, Services: services})
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	var booking domain.Booking
	if err := decodeJSON(r, &booking); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	booking.ID = id
	if err := h.bookingSvc.UpdateBooking(r.Context(), &booking); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// Confirm moves the booking to confirmed and fans out payout records.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	result, err := h.bookingSvc.ConfirmBooking(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{
		"payouts_created": result.Created,
		"payouts_skipped": result.Skipped,
	})
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := h.bookingSvc.CompleteBooking(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.BookingStatusCompleted)})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := h.bookingSvc.CancelBooking(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.BookingStatusCancelled)})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.BookingStatus(r.URL.Query().Get("status"))
	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: bookings, TotalCount: total})
}
