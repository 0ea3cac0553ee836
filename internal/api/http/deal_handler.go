package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type DealHandler struct {
	dealSvc service.DealService
}

func NewDealHandler(dealSvc service.DealService) *DealHandler {
	return &DealHandler{dealSvc: dealSvc}
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var deal domain.Deal
	if err := decodeJSON(r, &deal); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if deal.CustomerID == 0 || deal.Title == "" {
		respondError(w, http.StatusBadRequest, "customer_id and title are required")
		return
	}
	if err := h.dealSvc.CreateDeal(r.Context(), &deal); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, deal)
}

func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deal id")
		return
	}
	deal, err := h.dealSvc.GetDeal(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deal id")
		return
	}
	var deal domain.Deal
	if err := decodeJSON(r, &deal); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deal.ID = id
	if err := h.dealSvc.UpdateDeal(r.Context(), &deal); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid deal id")
		return
	}
	if err := h.dealSvc.DeleteDeal(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		h.listByCustomer(w, r)
		return
	}
	page, pageSize := pagination(r)
	deals, total, err := h.dealSvc.ListDeals(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: deals, TotalCount: total})
}

func (h *DealHandler) listByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := queryID(r, "customer_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer_id")
		return
	}
	deals, err := h.dealSvc.ListCustomerDeals(r.Context(), customerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: deals, TotalCount: int32(len(deals))})
}
