package http

import (
	"net/http"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var school domain.School
	if err := decodeJSON(r, &school); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if school.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.catalogSvc.CreateSchool(r.Context(), &school); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, school)
}

func (h *CatalogHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid school id")
		return
	}
	school, err := h.catalogSvc.GetSchool(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, school)
}

func (h *CatalogHandler) UpdateSchool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid school id")
		return
	}
	var school domain.School
	if err := decodeJSON(r, &school); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	school.ID = id
	if err := h.catalogSvc.UpdateSchool(r.Context(), &school); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, school)
}

func (h *CatalogHandler) DeleteSchool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid school id")
		return
	}
	if err := h.catalogSvc.DeleteSchool(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.catalogSvc.ListSchools(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: schools, TotalCount: int32(len(schools))})
}

func (h *CatalogHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var dest domain.Destination
	if err := decodeJSON(r, &dest); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dest.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.catalogSvc.CreateDestination(r.Context(), &dest); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dest)
}

func (h *CatalogHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid destination id")
		return
	}
	dest, err := h.catalogSvc.GetDestination(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dest)
}

func (h *CatalogHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid destination id")
		return
	}
	var dest domain.Destination
	if err := decodeJSON(r, &dest); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dest.ID = id
	if err := h.catalogSvc.UpdateDestination(r.Context(), &dest); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dest)
}

func (h *CatalogHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid destination id")
		return
	}
	if err := h.catalogSvc.DeleteDestination(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := h.catalogSvc.ListDestinations(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: dests, TotalCount: int32(len(dests))})
}
