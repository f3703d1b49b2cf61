package handlers

import (
	"mime"
	"net/http"

	"tasko/internal/logger"

	"go.uber.org/zap"
)

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == target
}

// requireJSON corta la petición con 415 si el cuerpo no viene declarado
// como JSON. Toda ruta que decodifica un cuerpo pasa por aquí.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	if checkContentType(r, "application/json") {
		return true
	}
	logger.Warn("HTTP: Tipo de contenido inválido",
		zap.String("received", r.Header.Get("Content-Type")),
		zap.String("client_ip", r.RemoteAddr))
	responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type debe ser application/json")
	return false
}
