package task_test

import (
	"testing"

	"tasko/internal/models/task"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected task.Status
	}{
		{name: "pendiente", input: "pendiente", expected: task.StatusPending},
		{name: "legacy plural label", input: "Pendientes", expected: task.StatusPending},
		{name: "in progress exact", input: "en progreso", expected: task.StatusInProgress},
		{name: "in progress embedded", input: "tarea en progreso ahora", expected: task.StatusInProgress},
		{name: "completada", input: "Completada", expected: task.StatusCompleted},
		{name: "completa short form", input: "completa", expected: task.StatusCompleted},
		{name: "empty falls back to pending", input: "", expected: task.StatusPending},
		{name: "garbage falls back to pending", input: "???", expected: task.StatusPending},
		{name: "whitespace trimmed", input: "  pendiente  ", expected: task.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.NormalizeStatus(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.Valid(), "el resultado siempre pertenece a la enumeración")
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected task.Priority
	}{
		{name: "alta lowercase", input: "alta", expected: task.PriorityHigh},
		{name: "baja uppercase", input: "BAJA", expected: task.PriorityLow},
		{name: "media", input: "media", expected: task.PriorityMedium},
		{name: "unknown falls back to media", input: "xyz", expected: task.PriorityMedium},
		{name: "empty falls back to media", input: "", expected: task.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.NormalizePriority(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "valid date", input: "10-04-2025", expectError: false},
		{name: "leap day accepted", input: "29-02-2024", expectError: false},
		{name: "leap day rejected on non leap year", input: "29-02-2025", expectError: true},
		{name: "april has 30 days", input: "31-04-2025", expectError: true},
		{name: "iso format rejected", input: "2025-04-10", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "not a date", input: "mañana", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := task.ParseDueDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
