package inmemory

import (
	"context"
	"sort"
	"sync"

	"tasko/internal/models/focustime"
	"tasko/internal/repository"

	"github.com/google/uuid"
)

type FocusTimeStorage struct {
	mtx     sync.RWMutex
	storage map[string]focustime.FocusTime
	ids     []string
}

func NewFocusTimeStorage() *FocusTimeStorage {
	return &FocusTimeStorage{
		storage: make(map[string]focustime.FocusTime),
		ids:     []string{},
	}
}

func (s *FocusTimeStorage) Create(ctx context.Context, ft *focustime.FocusTime) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := uuid.NewString()
	stored := *ft
	stored.ID = id
	s.storage[id] = stored
	s.ids = append(s.ids, id)
	return id, nil
}

func (s *FocusTimeStorage) GetByID(ctx context.Context, id string) (*focustime.FocusTime, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &stored, nil
}

func (s *FocusTimeStorage) Update(ctx context.Context, ft *focustime.FocusTime) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[ft.ID]; !ok {
		return repository.ErrNotFound
	}
	s.storage[ft.ID] = *ft
	return nil
}

// GetByTask devuelve los registros de una tarea ordenados por fecha de
// creación ascendente.
func (s *FocusTimeStorage) GetByTask(ctx context.Context, taskID string) ([]*focustime.FocusTime, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*focustime.FocusTime{}
	for _, id := range s.ids {
		stored := s.storage[id]
		if stored.TaskID != taskID {
			continue
		}
		rec := stored
		res = append(res, &rec)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}
