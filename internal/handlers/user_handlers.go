package handlers

import (
	"encoding/json"
	"net/http"

	"tasko/internal/handlers/dto"
	"tasko/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) PostUser(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	u, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusCreated, dto.FromUser(u))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	userID, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.LoginResponse{
		Status: "success",
		UserID: userID,
		Token:  token,
	})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromUserList(users))
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	u, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromUser(u))
}

func (h *UserHandler) UpdateUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if !requireJSON(w, r) {
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("HTTP: Error al leer JSON", zap.Error(err))
		responseWithError(w, http.StatusBadRequest, "cuerpo de la petición inválido: "+err.Error())
		return
	}
	defer r.Body.Close()

	u, err := h.service.UpdateUser(r.Context(), id, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.FromUser(u))
}

func (h *UserHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "el id no puede estar vacío")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	responseWithJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
