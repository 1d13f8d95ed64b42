package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Get godoc
// @Summary Get report
// @Description Compute a report aggregation over the current data set
// @Tags Reports
// @Accept json
// @Produce json
// @Param type path string true "Report type" Enums(clientsByStatus, jobsByMaterial, monthlyIncome, profits)
// @Success 200 {object} domain.ReportResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/{type} [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportType := domain.ReportType(chi.URLParam(r, "type"))

	result, err := h.reportService.Get(r.Context(), reportType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportType) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Unknown report type",
			})
			return
		}
		h.logger.Error("failed to build report", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to build report",
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Export godoc
// @Summary Export report
// @Description Compute a report and record the export in the report history
// @Tags Reports
// @Accept json
// @Produce json
// @Param type path string true "Report type" Enums(clientsByStatus, jobsByMaterial, monthlyIncome, profits)
// @Param request body domain.ExportReportRequest true "Export format"
// @Success 201 {object} domain.Report
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/{type}/export [post]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	reportType := domain.ReportType(chi.URLParam(r, "type"))

	var req domain.ExportReportRequest
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

	report, err := h.reportService.Export(r.Context(), reportType, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownReportType):
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Unknown report type",
			})
		case errors.Is(err, service.ErrUnknownReportFormat):
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Unknown report format",
			})
		default:
			h.logger.Error("failed to export report", zap.Error(err))
			respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to export report",
			})
		}
		return
	}

	respondJSON(w, http.StatusCreated, report)
}

// History godoc
// @Summary Report export history
// @Description Get recorded report exports, flat and bucketed by day
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} domain.ReportHistoryResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /reports/history [get]
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.reportService.History(r.Context())
	if err != nil {
		h.logger.Error("failed to get report history", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get report history",
		})
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// Statistics godoc
// @Summary Workshop statistics
// @Description Get the aggregate business figures shown on the dashboard
// @Tags Reports
// @Accept json
// @Produce json
// @Success 200 {object} domain.Statistics
// @Failure 500 {object} domain.ErrorResponse
// @Router /stats [get]
func (h *ReportHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Statistics(r.Context())
	if err != nil {
		h.logger.Error("failed to compute statistics", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to compute statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
