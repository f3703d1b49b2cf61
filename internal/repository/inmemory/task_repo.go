package inmemory

import (
	"context"
	"slices"
	"sync"
	"time"

	"tasko/internal/models/task"
	"tasko/internal/repository"

	"github.com/google/uuid"
)

// TaskStorage guarda las tareas en memoria. El slice ids conserva el
// orden de inserción, que es el orden de enumeración que ven los
// listados y el resumen de tiempo de concentración.
type TaskStorage struct {
	mtx     sync.RWMutex
	storage map[string]task.Task
	ids     []string
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[string]task.Task),
		ids:     []string{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TaskStorage) Create(ctx context.Context, t *task.Task) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := uuid.NewString()
	stored := *t
	stored.ID = id
	s.storage[id] = stored
	s.ids = append(s.ids, id)
	return id, nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id string) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneTask(stored), nil
}

// Update reemplaza el documento completo; no hay parches parciales.
func (s *TaskStorage) Update(ctx context.Context, t *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[t.ID]; !ok {
		return repository.ErrNotFound
	}
	s.storage[t.ID] = *t
	return nil
}

func (s *TaskStorage) Delete(ctx context.Context, id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

func (s *TaskStorage) GetAll(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, cloneTask(s.storage[id]))
	}
	return res, nil
}

func (s *TaskStorage) GetByStatus(ctx context.Context, status task.Status) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		stored := s.storage[id]
		if stored.Status != status {
			continue
		}
		res = append(res, cloneTask(stored))
	}
	return res, nil
}

// GetByUser filtra por dueño y, opcionalmente, por etiqueta (pertenencia
// al conjunto) y por estado (igualdad sobre el valor normalizado).
func (s *TaskStorage) GetByUser(ctx context.Context, userID, tag string, status task.Status) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		stored := s.storage[id]
		if stored.UserID != userID {
			continue
		}
		if tag != "" && !slices.Contains(stored.Tags, tag) {
			continue
		}
		if status != "" && stored.Status != status {
			continue
		}
		res = append(res, cloneTask(stored))
	}
	return res, nil
}

// GetDueBefore devuelve tareas sin completar cuya fecha límite quedó
// atrás. Fechas que no parsean se ignoran: no deberían existir porque
// la validación corre antes de cada escritura.
func (s *TaskStorage) GetDueBefore(ctx context.Context, deadline time.Time, limit int) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		if len(res) >= limit {
			break
		}
		stored := s.storage[id]
		if stored.Completed || stored.Status == task.StatusCompleted {
			continue
		}
		due, err := task.ParseDueDate(stored.DueDate)
		if err != nil {
			continue
		}
		if due.Before(deadline) {
			res = append(res, cloneTask(stored))
		}
	}
	return res, nil
}

// cloneTask copia el documento para que el llamador no pueda mutar el
// estado interno del almacenamiento.
func cloneTask(t task.Task) *task.Task {
	c := t
	c.Tags = slices.Clone(t.Tags)
	c.Steps = slices.Clone(t.Steps)
	return &c
}
