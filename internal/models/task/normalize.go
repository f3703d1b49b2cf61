package task

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DueDateLayout es el formato fijo de fecha límite: DD-MM-AAAA.
const DueDateLayout = "02-01-2006"

// NormalizeStatus reduce texto libre a la enumeración de estados.
// Es una función total: cualquier entrada no reconocida (incluida la
// cadena vacía) termina en Pendiente. La etiqueta vieja "Pendientes"
// de revisiones anteriores también se acepta.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "pendiente" || s == "pendientes":
		return StatusPending
	case strings.Contains(s, "en progreso"):
		return StatusInProgress
	case s == "completa" || s == "completada":
		return StatusCompleted
	default:
		return StatusPending
	}
}

// NormalizePriority capitaliza la primera letra y compara contra las
// etiquetas conocidas; si no hay coincidencia exacta devuelve Media.
func NormalizePriority(raw string) Priority {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return PriorityMedium
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	switch p := Priority(string(runes)); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	default:
		return PriorityMedium
	}
}

// ParseDueDate valida que la cadena cumpla el formato DD-MM-AAAA y que
// sea una fecha real del calendario (time.Parse rechaza 31-04-2025).
func ParseDueDate(raw string) (time.Time, error) {
	t, err := time.Parse(DueDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q no cumple el formato DD-MM-AAAA: %w", raw, err)
	}
	return t, nil
}
