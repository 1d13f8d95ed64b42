package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"go.uber.org/zap"
)

type JobHandler struct {
	jobService *service.JobService
	logger     *zap.Logger
}

func NewJobHandler(jobService *service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		logger:     logger,
	}
}

// List godoc
// @Summary List jobs
// @Description Get all jobs, or only one client's jobs
// @Tags Jobs
// @Accept json
// @Produce json
// @Param clientId query int false "Restrict to one client"
// @Success 200 {object} domain.JobListResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	var clientID int64
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid clientId",
			})
			return
		}
		clientID = parsed
	}

	jobs, err := h.jobService.List(r.Context(), clientID)
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list jobs",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.JobListResponse{Jobs: jobs, Total: len(jobs)})
}

// GetByID godoc
// @Summary Get job by ID
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
			return
		}
		h.logger.Error("failed to get job", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get job",
		})
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Create godoc
// @Summary Create job
// @Description Create a work order for a client. The client's status is re-derived afterwards.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body domain.CreateJobRequest true "Job data"
// @Success 201 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "Owning client does not exist"
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateJobRequest
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

	job, err := h.jobService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Client not found",
			})
			return
		}
		h.logger.Error("failed to create job", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create job",
		})
		return
	}

	w.Header().Set("Location", "/api/v1/jobs/"+strconv.FormatInt(job.ID, 10))
	respondJSON(w, http.StatusCreated, job)
}

// Update godoc
// @Summary Update job
// @Description Merge the supplied fields onto the job; the owning client's status is re-derived afterwards
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body domain.UpdateJobRequest true "Fields to update"
// @Success 200 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

	var req domain.UpdateJobRequest
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

	job, err := h.jobService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
			return
		}
		h.logger.Error("failed to update job", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update job",
		})
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Delete godoc
// @Summary Delete job
// @Description Delete a job; the owning client's status is re-derived afterwards
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
			return
		}
		h.logger.Error("failed to delete job", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete job",
		})
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// AddFile godoc
// @Summary Attach file to job
// @Description Attach an uploaded file (data URI) or an external link. Thumbnails for external videos and PDFs resolve in the background.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body domain.AddJobFileRequest true "File data"
// @Success 200 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs/{id}/files [post]
func (h *JobHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

	var req domain.AddJobFileRequest
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

	job, err := h.jobService.AddFile(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
			return
		}
		h.logger.Error("failed to add file", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to add file",
		})
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// RemoveFile godoc
// @Summary Remove file from job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param fileId path int true "File ID"
// @Success 200 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs/{id}/files/{fileId} [delete]
func (h *JobHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

	fileID, err := parseID(r, "fileId")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid file ID format",
		})
		return
	}

	job, err := h.jobService.RemoveFile(r.Context(), id, fileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
		case errors.Is(err, service.ErrFileNotFound):
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "File not found",
			})
		default:
			h.logger.Error("failed to remove file", zap.Error(err))
			respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to remove file",
			})
		}
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// SaveCalculator godoc
// @Summary Save job calculator
// @Description Compute price and cost totals from the inputs and store the result on the job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body domain.CalculatorRequest true "Calculator inputs"
// @Success 200 {object} domain.Job
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /jobs/{id}/calculator [put]
func (h *JobHandler) SaveCalculator(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid job ID format",
		})
		return
	}

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

	job, err := h.jobService.SaveCalculator(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Job not found",
			})
			return
		}
		h.logger.Error("failed to save calculator", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to save calculator",
		})
		return
	}

	respondJSON(w, http.StatusOK, job)
}
