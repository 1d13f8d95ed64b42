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

type EventHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

func NewEventHandler(eventService *service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List godoc
// @Summary List events
// @Description Get calendar events, optionally limited to one month
// @Tags Events
// @Accept json
// @Produce json
// @Param month query string false "Month filter in YYYY-MM format"
// @Success 200 {object} domain.EventListResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Error("failed to list events", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to list events",
		})
		return
	}

	respondJSON(w, http.StatusOK, domain.EventListResponse{Events: events, Total: len(events)})
}

// GetByID godoc
// @Summary Get event by ID
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid event ID format",
		})
		return
	}

	event, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Event not found",
			})
			return
		}
		h.logger.Error("failed to get event", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to get event",
		})
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body domain.CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEventRequest
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

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create event", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to create event",
		})
		return
	}

	w.Header().Set("Location", "/api/v1/events/"+strconv.FormatInt(event.ID, 10))
	respondJSON(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update event
// @Description Merge the supplied fields onto the event; omitted fields are left unchanged
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body domain.UpdateEventRequest true "Fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid event ID format",
		})
		return
	}

	var req domain.UpdateEventRequest
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

	event, err := h.eventService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Event not found",
			})
			return
		}
		h.logger.Error("failed to update event", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to update event",
		})
		return
	}

	respondJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
			Error:   "Bad Request",
			Message: "Invalid event ID format",
		})
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondJSON(w, http.StatusNotFound, domain.ErrorResponse{
				Error:   "Not Found",
				Message: "Event not found",
			})
			return
		}
		h.logger.Error("failed to delete event", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Failed to delete event",
		})
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
