package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"go.uber.org/zap"
)

// CalculatorHandler serves stateless calculator runs. Saving a calculator
// onto a job goes through JobHandler instead.
type CalculatorHandler struct {
	logger *zap.Logger
}

func NewCalculatorHandler(logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{logger: logger}
}

// Defaults godoc
// @Summary Default calculator inputs
// @Description Get the pre-filled inputs offered when opening a fresh calculator
// @Tags Calculator
// @Accept json
// @Produce json
// @Success 200 {object} domain.CalculatorRequest
// @Router /calculator/defaults [get]
func (h *CalculatorHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, service.DefaultCalculatorInputs())
}

// Preview godoc
// @Summary Preview calculator run
// @Description Compute totals, profit and margin from the inputs without storing anything
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body domain.CalculatorRequest true "Calculator inputs"
// @Success 200 {object} domain.CalculatorPreviewResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /calculator/preview [post]
func (h *CalculatorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculatorRequest
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

	calc := service.ComputeTotals(req)
	respondJSON(w, http.StatusOK, domain.CalculatorPreviewResponse{
		Calculator:       calc,
		Profit:           service.Profit(calc),
		ProfitPercentage: service.LiveProfitPercentage(calc),
	})
}
