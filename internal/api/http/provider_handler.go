package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type ProviderHandler struct {
	providerSvc service.ProviderService
	balanceSvc  service.BalanceService
	payoutSvc   service.PayoutService
}

func NewProviderHandler(providerSvc service.ProviderService, balanceSvc service.BalanceService, payoutSvc service.PayoutService) *ProviderHandler {
	return &ProviderHandler{providerSvc: providerSvc, balanceSvc: balanceSvc, payoutSvc: payoutSvc}
}

func serviceTypeVar(r *http.Request) (domain.ServiceType, bool) {
	t := domain.ServiceType(mux.Vars(r)["type"])
	return t, t.Valid()
}

func (h *ProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	var provider domain.ServiceProvider
	if err := decodeJSON(r, &provider); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	provider.ServiceType = serviceType
	if provider.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.providerSvc.CreateProvider(r.Context(), &provider); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, provider)
}

func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	provider, err := h.providerSvc.GetProvider(r.Context(), serviceType, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) Update(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	var provider domain.ServiceProvider
	if err := decodeJSON(r, &provider); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	provider.ServiceType = serviceType
	provider.ID = id
	if err := h.providerSvc.UpdateProvider(r.Context(), &provider); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	if err := h.providerSvc.DeleteProvider(r.Context(), serviceType, id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	providers, err := h.providerSvc.ListProviders(r.Context(), serviceType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: providers, TotalCount: int32(len(providers))})
}

// Balance returns the provider's earned/paid-out snapshot.
func (h *ProviderHandler) Balance(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	balance, err := h.balanceSvc.CalculateProviderBalance(r.Context(), serviceType, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, balance)
}

// Payouts lists every payout row for the provider, both types.
func (h *ProviderHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	serviceType, ok := serviceTypeVar(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid service type")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	payouts, err := h.payoutSvc.ListProviderPayouts(r.Context(), serviceType, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: payouts, TotalCount: int32(len(payouts))})
}
