package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"tasko/internal/handlers/dto"
	"tasko/internal/logger"
	"tasko/internal/models/task"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !requireJSON(w, r) {
		return
	}

	var input task.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Warn("HTTP: Error al leer JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	created, err := h.service.CreateTask(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Tarea creada",
		zap.String("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, dto.FromTask(created))
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	t, err := h.service.GetTaskByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromTask(t))
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	tasks, err := h.service.ListTasks(r.Context(), status)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromTaskList(tasks))
}

// GetUserTasks lista las tareas de un usuario con filtros opcionales
// ?tag= y ?status=.
func (h *TaskHandler) GetUserTasks(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		responseWithError(w, http.StatusBadRequest, "el id de usuario no puede estar vacío")
		return
	}

	tag := r.URL.Query().Get("tag")
	status := r.URL.Query().Get("status")

	tasks, err := h.service.ListUserTasks(r.Context(), userID, tag, status)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromTaskList(tasks))
}

func (h *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if !requireJSON(w, r) {
		return
	}

	var input task.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Warn("HTTP: Error al leer JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "parámetros de actualización inválidos: "+err.Error())
		return
	}
	defer r.Body.Close()

	updated, err := h.service.UpdateTask(r.Context(), id, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Tarea actualizada",
		zap.String("task_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTask(updated))
}

func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
