package task

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Input es la forma cruda de una tarea tal como llega del cliente.
// Tags se deja como JSON crudo porque los clientes viejos mandaban
// cualquier cosa ahí (un string suelto, un número); todo lo que no sea
// una lista de strings se reduce a lista vacía.
type Input struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DueDate       string          `json:"due_date"`
	Completed     bool            `json:"completed"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	Tags          json.RawMessage `json:"tags"`
	Steps         json.RawMessage `json:"steps"`
	Justification string          `json:"justification"`
}

type StepInput struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// FieldError es un fallo de validación atado a un campo concreto.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("campo '%s': %s", e.Field, e.Reason)
}

// Build normaliza y valida la entrada cruda y produce el registro
// canónico listo para persistir, o un error de validación. Nunca toca
// el almacenamiento; eso es responsabilidad del servicio.
func Build(in Input) (*Task, error) {
	status := NormalizeStatus(in.Status)
	if !status.Valid() {
		return nil, &FieldError{Field: "status", Reason: "estado inválido"}
	}

	priority := NormalizePriority(in.Priority)
	if !priority.Valid() {
		return nil, &FieldError{Field: "priority", Reason: "prioridad inválida"}
	}

	steps, err := coerceSteps(in.Steps)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, &FieldError{Field: "title", Reason: "es obligatorio"}
	}
	if len([]rune(in.Title)) > MaxTitleLen {
		return nil, &FieldError{Field: "title", Reason: fmt.Sprintf("supera los %d caracteres", MaxTitleLen)}
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, &FieldError{Field: "user_id", Reason: "es obligatorio"}
	}
	if strings.TrimSpace(in.DueDate) == "" {
		return nil, &FieldError{Field: "due_date", Reason: "es obligatorio"}
	}
	if _, err := ParseDueDate(in.DueDate); err != nil {
		return nil, &FieldError{Field: "due_date", Reason: "formato inválido, se espera DD-MM-AAAA"}
	}
	if len([]rune(in.Justification)) > MaxJustificationLen {
		return nil, &FieldError{Field: "justification", Reason: fmt.Sprintf("supera los %d caracteres", MaxJustificationLen)}
	}

	return &Task{
		Title:         in.Title,
		Description:   in.Description,
		DueDate:       in.DueDate,
		Completed:     in.Completed,
		UserID:        in.UserID,
		Status:        status,
		Priority:      priority,
		Tags:          coerceTags(in.Tags),
		Steps:         steps,
		Justification: in.Justification,
	}, nil
}

// coerceTags acepta únicamente una lista JSON de strings; cualquier
// otra forma (string suelto, número, objeto, null) se convierte en
// lista vacía. Política leniente heredada de los clientes existentes.
func coerceTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

// coerceSteps filtra los pasos bien formados: los que no traen
// descripción se descartan en silencio en vez de fallar. Una
// descripción demasiado larga sí es un error, porque ahí el cliente
// mandó datos reales que no caben.
func coerceSteps(raw json.RawMessage) ([]Step, error) {
	if len(raw) == 0 {
		return []Step{}, nil
	}
	var inputs []StepInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return []Step{}, nil
	}

	steps := make([]Step, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Description) == "" {
			continue
		}
		if len([]rune(in.Description)) > MaxStepLen {
			return nil, &FieldError{Field: "steps", Reason: fmt.Sprintf("la descripción de un paso supera los %d caracteres", MaxStepLen)}
		}
		steps = append(steps, Step{Description: in.Description, Completed: in.Completed})
	}
	return steps, nil
}
