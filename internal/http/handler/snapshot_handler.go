package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"go.uber.org/zap"
)

// importBodyLimit caps snapshot uploads; local attachments are inlined as
// data URIs so documents can get large.
const importBodyLimit = 64 << 20

type SnapshotHandler struct {
	snapshotService *service.SnapshotService
	logger          *zap.Logger
}

func NewSnapshotHandler(snapshotService *service.SnapshotService, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		logger:          logger,
	}
}

// Export godoc
// @Summary Export snapshot
// @Description Download the full data set as a JSON document
// @Tags Snapshot
// @Accept json
// @Produce json
// @Success 200 {object} domain.SnapshotDocument
// @Failure 500 {object} domain.ErrorResponse
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.snapshotService.Export(r.Context())
	if err != nil {
		h.logger.Error("failed to export snapshot", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to export snapshot",
		})
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="snapshot.json"`)
	respondJSON(w, http.StatusOK, doc)
}

// Import godoc
// @Summary Import snapshot
// @Description Replace the full data set with the uploaded JSON document. A malformed document leaves the current data untouched.
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param document body domain.SnapshotDocument true "Snapshot document"
// @Success 200 {object} domain.SnapshotDocument
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /snapshot [post]
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, importBodyLimit))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Failed to read request body",
		})
		return
	}

	doc, err := h.snapshotService.Import(r.Context(), raw)
	if err != nil {
		if errors.Is(err, snapshot.ErrMalformed) {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Malformed snapshot document",
			})
			return
		}
		h.logger.Error("failed to import snapshot", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to import snapshot",
		})
		return
	}

	respondJSON(w, http.StatusOK, doc)
}
