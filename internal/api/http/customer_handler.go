package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	ledgerSvc   service.LedgerService
}

func NewCustomerHandler(customerSvc service.CustomerService, ledgerSvc service.LedgerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, ledgerSvc: ledgerSvc}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if customer.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.customerSvc.CreateCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	customer, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = id
	if err := h.customerSvc.UpdateCustomer(r.Context(), &customer); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	customers, total, err := h.customerSvc.ListCustomers(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: customers, TotalCount: total})
}

// Transactions lists the customer's balance audit log.
func (h *CustomerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	page, pageSize := pagination(r)
	txs, total, err := h.ledgerSvc.GetTransactions(r.Context(), id, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: txs, TotalCount: total})
}
