package service

import (
	"context"
	"errors"
	"fmt"

	"tasko/internal/logger"
	"tasko/internal/models/task"
	"tasko/internal/repository"

	"go.uber.org/zap"
)

// StatusAll es el valor de filtro que significa "sin filtrar".
const StatusAll = "All"

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask construye el registro canónico y lo persiste. Si la
// validación falla no se toca el almacenamiento.
func (s *TaskService) CreateTask(ctx context.Context, in task.Input) (*task.Task, error) {
	t, err := task.Build(in)
	if err != nil {
		logger.Warn("Service: Tarea rechazada por validación", zap.Error(err))
		return nil, asValidationError(err)
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("creación de tarea: %w", err)
	}
	t.ID = id

	logger.Info("Service: Tarea creada", zap.String("task_id", id))
	return t, nil
}

// UpdateTask es un reemplazo completo del documento: verificación de
// existencia, luego construcción, luego escritura. Entre la lectura y
// la escritura no hay transacción; un borrado concurrente en esa
// ventana puede perder la actualización, lo cual se acepta porque el
// uso previsto es de un solo escritor por registro.
func (s *TaskService) UpdateTask(ctx context.Context, id string, in task.Input) (*task.Task, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Tarea no encontrada", zap.String("task_id", id))
			return nil, NewNotFound("tarea", id)
		}
		return nil, fmt.Errorf("lectura de tarea: %w", err)
	}

	t, err := task.Build(in)
	if err != nil {
		logger.Warn("Service: Actualización rechazada por validación", zap.Error(err))
		return nil, asValidationError(err)
	}
	t.ID = id

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("tarea", id)
		}
		return nil, fmt.Errorf("actualización de tarea: %w", err)
	}

	logger.Info("Service: Tarea actualizada", zap.String("task_id", id))
	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Tarea no encontrada", zap.String("task_id", id))
			return NewNotFound("tarea", id)
		}
		return fmt.Errorf("eliminación de tarea: %w", err)
	}
	logger.Info("Service: Tarea eliminada", zap.String("task_id", id))
	return nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("tarea", id)
		}
		return nil, fmt.Errorf("lectura de tarea: %w", err)
	}
	return t, nil
}

// ListTasks filtra por estado; "All" o cadena vacía devuelve todo.
// Cualquier otro valor se normaliza antes de comparar, así los
// clientes pueden mandar "en progreso" en minúsculas.
func (s *TaskService) ListTasks(ctx context.Context, status string) ([]*task.Task, error) {
	if status == "" || status == StatusAll {
		tasks, err := s.repo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("listado de tareas: %w", err)
		}
		return tasks, nil
	}

	tasks, err := s.repo.GetByStatus(ctx, task.NormalizeStatus(status))
	if err != nil {
		return nil, fmt.Errorf("listado de tareas por estado: %w", err)
	}
	return tasks, nil
}

// ListUserTasks lista las tareas de un usuario con filtros opcionales
// de etiqueta y estado.
func (s *TaskService) ListUserTasks(ctx context.Context, userID, tag, status string) ([]*task.Task, error) {
	var st task.Status
	if status != "" && status != StatusAll {
		st = task.NormalizeStatus(status)
	}

	tasks, err := s.repo.GetByUser(ctx, userID, tag, st)
	if err != nil {
		return nil, fmt.Errorf("listado de tareas del usuario: %w", err)
	}
	return tasks, nil
}
