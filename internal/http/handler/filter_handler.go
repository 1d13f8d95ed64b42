package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"go.uber.org/zap"
)

type FilterHandler struct {
	filterService *service.FilterService
	logger        *zap.Logger
}

func NewFilterHandler(filterService *service.FilterService, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{
		filterService: filterService,
		logger:        logger,
	}
}

// Get godoc
// @Summary Get filter catalogs
// @Description Get the material and company catalogs used by list filters
// @Tags Filters
// @Accept json
// @Produce json
// @Success 200 {object} domain.FilterCatalogs
// @Failure 500 {object} domain.ErrorResponse
// @Router /filters [get]
func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	filters, err := h.filterService.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get filters", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get filters",
		})
		return
	}

	respondJSON(w, http.StatusOK, filters)
}

// Update godoc
// @Summary Replace filter catalogs
// @Description Replace both catalogs. Blank entries are dropped and new entries get ids assigned.
// @Tags Filters
// @Accept json
// @Produce json
// @Param request body domain.UpdateFiltersRequest true "Catalog contents"
// @Success 200 {object} domain.FilterCatalogs
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /filters [put]
func (h *FilterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	filters, err := h.filterService.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to update filters", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update filters",
		})
		return
	}

	respondJSON(w, http.StatusOK, filters)
}
