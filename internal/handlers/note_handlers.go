package handlers

import (
	"encoding/json"
	"net/http"

	"tasko/internal/handlers/dto"
	"tasko/internal/logger"
	"tasko/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) PostNote(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var input service.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	n, err := h.service.CreateNote(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, n)
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.ListNotes(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	n, err := h.service.GetNoteByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, n)
}

func (h *NoteHandler) GetUserNotes(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		responseWithError(w, http.StatusBadRequest, "el id de usuario no puede estar vacío")
		return
	}

	notes, err := h.service.ListUserNotes(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) UpdateNoteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if !requireJSON(w, r) {
		return
	}

	var input service.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	n, err := h.service.UpdateNote(r.Context(), id, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, n)
}

func (h *NoteHandler) DeleteNoteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if err := h.service.DeleteNote(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
