package handlers

import (
	"errors"
	"net/http"

	"tasko/internal/logger"
	"tasko/internal/service"

	"go.uber.org/zap"
)

// handleServiceError traduce errores de negocio a códigos HTTP; todo
// lo que no sea un BusinessError se reporta como fallo interno con el
// mensaje original adjunto.
func handleServiceError(w http.ResponseWriter, err error) {
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		status := mapBusinessErrorToHTTP(busErr.Code)

		logger.Warn("HTTP: Error de negocio",
			zap.String("error_code", busErr.Code),
			zap.Int("http_status", status))

		responseWithJSON(w, status, map[string]any{
			"error":   busErr.Code,
			"message": busErr.Message,
			"details": busErr.Details,
		})
		return
	}

	logger.Error("HTTP: Error interno", err)
	responseWithError(w, http.StatusInternalServerError, err.Error())
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidationError:
		return http.StatusBadRequest
	case service.CodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
