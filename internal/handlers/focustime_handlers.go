package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"tasko/internal/handlers/dto"
	"tasko/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FocusTimeHandler struct {
	service FocusTimeService
}

func NewFocusTimeHandler(service FocusTimeService) *FocusTimeHandler {
	return &FocusTimeHandler{service: service}
}

func (h *FocusTimeHandler) PostFocusTime(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !requireJSON(w, r) {
		return
	}

	var req dto.CreateFocusTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.TaskID == "" {
		logger.Warn("HTTP: Error de validación",
			zap.String("field", "task_id"),
			zap.String("error", "empty_field"))
		responseWithError(w, http.StatusBadRequest, "task_id no puede estar vacío")
		return
	}

	ft, err := h.service.Create(r.Context(), req.TaskID, req.Minutes)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Registro de concentración creado",
		zap.String("focus_time_id", ft.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, ft)
}

func (h *FocusTimeHandler) UpdateFocusTimeByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if !requireJSON(w, r) {
		return
	}

	var req dto.UpdateFocusTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	ft, err := h.service.Update(r.Context(), id, req.Minutes)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, ft)
}

func (h *FocusTimeHandler) GetTaskFocusTimes(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		responseWithError(w, http.StatusBadRequest, "el id de tarea no puede estar vacío")
		return
	}

	records, err := h.service.ListByTask(r.Context(), taskID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, records)
}

func (h *FocusTimeHandler) GetUserSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		responseWithError(w, http.StatusBadRequest, "el id de usuario no puede estar vacío")
		return
	}

	summary, err := h.service.SummarizeByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, summary)
}
