package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type BillHandler struct {
	billSvc service.BillService
}

func NewBillHandler(billSvc service.BillService) *BillHandler {
	return &BillHandler{billSvc: billSvc}
}

type billRequest struct {
	domain.Bill
	Payments []domain.BillPayment `json:"payments"`
}

type billResponse struct {
	Bill     *domain.Bill         `json:"bill"`
	Payments []domain.BillPayment `json:"payments"`
}

func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == 0 {
		respondError(w, http.StatusBadRequest, "customer_id is required")
		return
	}
	if err := h.billSvc.CreateBill(r.Context(), &req.Bill, req.Payments); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, billResponse{Bill: &req.Bill, Payments: req.Payments})
}

func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}
	bill, payments, err := h.billSvc.GetBill(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, billResponse{Bill: bill, Payments: payments})
}

func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}
	var bill domain.Bill
	if err := decodeJSON(r, &bill); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	bill.ID = id
	if err := h.billSvc.UpdateBill(r.Context(), &bill); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bill)
}

type paymentsRequest struct {
	Payments []domain.BillPayment `json:"payments"`
}

// UpdatePayments replaces every payment leg of the bill.
func (h *BillHandler) UpdatePayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}
	var req paymentsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.billSvc.UpdateBillPayments(r.Context(), id, req.Payments); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"payments": len(req.Payments)})
}

func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}
	if err := h.billSvc.DeleteBill(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		id, err := queryID(r, "customer_id")
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid customer_id")
			return
		}
		bills, err := h.billSvc.ListCustomerBills(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, listResponse{Items: bills, TotalCount: int32(len(bills))})
		return
	}

	page, pageSize := pagination(r)
	bills, total, err := h.billSvc.ListBills(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: bills, TotalCount: total})
}
