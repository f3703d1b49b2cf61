package task_test

import (
	"encoding/json"
	"strings"
	"testing"

	"tasko/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() task.Input {
	return task.Input{
		Title:   "Preparar informe",
		DueDate: "15-10-2025",
		UserID:  "user-1",
	}
}

func TestBuild_Defaults(t *testing.T) {
	built, err := task.Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, task.StatusPending, built.Status)
	assert.Equal(t, task.PriorityMedium, built.Priority)
	assert.Equal(t, []string{}, built.Tags)
	assert.Equal(t, []task.Step{}, built.Steps)
	assert.False(t, built.Completed)
}

func TestBuild_TagsCoercion(t *testing.T) {
	tests := []struct {
		name     string
		rawTags  string
		expected []string
	}{
		{name: "valid list", rawTags: `["casa","trabajo"]`, expected: []string{"casa", "trabajo"}},
		{name: "single string becomes empty", rawTags: `"casa"`, expected: []string{}},
		{name: "number becomes empty", rawTags: `42`, expected: []string{}},
		{name: "object becomes empty", rawTags: `{"a":1}`, expected: []string{}},
		{name: "null becomes empty", rawTags: `null`, expected: []string{}},
		{name: "mixed list becomes empty", rawTags: `["casa", 7]`, expected: []string{}},
		{name: "absent becomes empty", rawTags: ``, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			if tt.rawTags != "" {
				in.Tags = json.RawMessage(tt.rawTags)
			}

			built, err := task.Build(in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, built.Tags)
		})
	}
}

func TestBuild_StepsFiltering(t *testing.T) {
	in := validInput()
	in.Steps = json.RawMessage(`[
		{"description":"Redactar borrador","completed":true},
		{"completed":false},
		{"description":"   "},
		{"description":"Revisar ortografía"}
	]`)

	built, err := task.Build(in)
	require.NoError(t, err)

	require.Len(t, built.Steps, 2)
	assert.Equal(t, "Redactar borrador", built.Steps[0].Description)
	assert.True(t, built.Steps[0].Completed)
	assert.Equal(t, "Revisar ortografía", built.Steps[1].Description)
}

func TestBuild_StepsNotAList(t *testing.T) {
	in := validInput()
	in.Steps = json.RawMessage(`"no soy una lista"`)

	built, err := task.Build(in)
	require.NoError(t, err)
	assert.Equal(t, []task.Step{}, built.Steps)
}

func TestBuild_StepDescriptionTooLong(t *testing.T) {
	in := validInput()
	long := strings.Repeat("a", task.MaxStepLen+1)
	in.Steps = json.RawMessage(`[{"description":"` + long + `"}]`)

	_, err := task.Build(in)
	require.Error(t, err)

	var fieldErr *task.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "steps", fieldErr.Field)
}

func TestBuild_Normalization(t *testing.T) {
	in := validInput()
	in.Status = "EN PROGRESO ya"
	in.Priority = "alta"

	built, err := task.Build(in)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, built.Status)
	assert.Equal(t, task.PriorityHigh, built.Priority)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*task.Input)
		expectedField string
	}{
		{
			name:          "missing title",
			mutate:        func(in *task.Input) { in.Title = "  " },
			expectedField: "title",
		},
		{
			name:          "title too long",
			mutate:        func(in *task.Input) { in.Title = strings.Repeat("x", task.MaxTitleLen+1) },
			expectedField: "title",
		},
		{
			name:          "missing user_id",
			mutate:        func(in *task.Input) { in.UserID = "" },
			expectedField: "user_id",
		},
		{
			name:          "missing due_date",
			mutate:        func(in *task.Input) { in.DueDate = "" },
			expectedField: "due_date",
		},
		{
			name:          "bad due_date format",
			mutate:        func(in *task.Input) { in.DueDate = "2025-04-10" },
			expectedField: "due_date",
		},
		{
			name:          "impossible calendar date",
			mutate:        func(in *task.Input) { in.DueDate = "31-04-2025" },
			expectedField: "due_date",
		},
		{
			name:          "justification too long",
			mutate:        func(in *task.Input) { in.Justification = strings.Repeat("j", task.MaxJustificationLen+1) },
			expectedField: "justification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := task.Build(in)
			require.Error(t, err)

			var fieldErr *task.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.expectedField, fieldErr.Field)
		})
	}
}
