package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tasko/internal/logger"
	"tasko/internal/models/focustime"
	"tasko/internal/repository"

	"go.uber.org/zap"
)

type FocusTimeService struct {
	repo  FocusTimeRepository
	tasks TaskRepository
}

func NewFocusTimeService(repo FocusTimeRepository, tasks TaskRepository) *FocusTimeService {
	return &FocusTimeService{repo: repo, tasks: tasks}
}

// TaskSummary es una entrada del resumen de minutos por tarea.
type TaskSummary struct {
	TaskID       string `json:"task_id"`
	TaskTitle    string `json:"task_title"`
	TotalMinutes int    `json:"total_minutes"`
}

// Create registra un intervalo de concentración. La tarea padre debe
// existir; su user_id se copia desnormalizado al registro nuevo.
func (s *FocusTimeService) Create(ctx context.Context, taskID string, minutes int) (*focustime.FocusTime, error) {
	if minutes <= 0 {
		return nil, NewValidationError("minutes", "debe ser un entero positivo")
	}

	parent, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Tarea no encontrada para registro de concentración", zap.String("task_id", taskID))
			return nil, NewNotFound("tarea", taskID)
		}
		return nil, fmt.Errorf("lectura de tarea padre: %w", err)
	}

	ft := &focustime.FocusTime{
		TaskID:    taskID,
		UserID:    parent.UserID,
		Minutes:   minutes,
		CreatedAt: time.Now(),
		UpdatedAt: nil,
	}

	id, err := s.repo.Create(ctx, ft)
	if err != nil {
		return nil, fmt.Errorf("creación de registro de concentración: %w", err)
	}
	ft.ID = id

	logger.Info("Service: Registro de concentración creado",
		zap.String("focus_time_id", id),
		zap.String("task_id", taskID),
		zap.Int("minutes", minutes))
	return ft, nil
}

func (s *FocusTimeService) Update(ctx context.Context, id string, minutes int) (*focustime.FocusTime, error) {
	if minutes <= 0 {
		return nil, NewValidationError("minutes", "debe ser un entero positivo")
	}

	ft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("registro de concentración", id)
		}
		return nil, fmt.Errorf("lectura de registro de concentración: %w", err)
	}

	now := time.Now()
	ft.Minutes = minutes
	ft.UpdatedAt = &now

	if err := s.repo.Update(ctx, ft); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("registro de concentración", id)
		}
		return nil, fmt.Errorf("actualización de registro de concentración: %w", err)
	}
	return ft, nil
}

// ListByTask devuelve los registros de una tarea, orden ascendente por
// fecha de creación. Para registros viejos sin user_id se rellena el
// campo consultando la tarea padre; es una reparación de lectura, no
// se persiste.
func (s *FocusTimeService) ListByTask(ctx context.Context, taskID string) ([]*focustime.FocusTime, error) {
	records, err := s.repo.GetByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("listado de registros de concentración: %w", err)
	}

	var ownerID string
	for _, rec := range records {
		if rec.UserID != "" {
			continue
		}
		if ownerID == "" {
			parent, err := s.tasks.GetByID(ctx, taskID)
			if err != nil {
				// sin tarea padre no hay de dónde rellenar
				break
			}
			ownerID = parent.UserID
		}
		rec.UserID = ownerID
	}
	return records, nil
}

// SummarizeByUser suma los minutos registrados por tarea del usuario,
// descarta tareas con total cero y ordena por total descendente. El
// desempate es el orden de enumeración de las tareas (orden estable).
// Las lecturas son independientes: un registro creado a mitad del
// recorrido puede aparecer o no.
func (s *FocusTimeService) SummarizeByUser(ctx context.Context, userID string) ([]TaskSummary, error) {
	tasks, err := s.tasks.GetByUser(ctx, userID, "", "")
	if err != nil {
		return nil, fmt.Errorf("listado de tareas del usuario: %w", err)
	}

	summaries := []TaskSummary{}
	for _, t := range tasks {
		records, err := s.repo.GetByTask(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("lectura de registros de la tarea %s: %w", t.ID, err)
		}

		total := 0
		for _, rec := range records {
			total += rec.Minutes
		}
		if total > 0 {
			summaries = append(summaries, TaskSummary{
				TaskID:       t.ID,
				TaskTitle:    t.Title,
				TotalMinutes: total,
			})
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalMinutes > summaries[j].TotalMinutes
	})
	return summaries, nil
}
