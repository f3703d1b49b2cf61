package handlers

import (
	"context"
	"net/http"

	"tasko/internal/logger"
)

// Root confirma que la API responde.
func Root(w http.ResponseWriter, r *http.Request) {
	responseWithJSON(w, http.StatusOK, map[string]string{"message": "API Tasko funcionando"})
}

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

func Health(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.HealthCheck(r.Context()); err != nil {
			logger.Error("HTTP: Falló la verificación de salud", err)
			responseWithError(w, http.StatusServiceUnavailable, "almacenamiento no disponible")
			return
		}
		responseWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
