package inmemory

import (
	"context"
	"sync"

	"tasko/internal/models/user"
	"tasko/internal/repository"

	"github.com/google/uuid"
)

type UserStorage struct {
	mtx     sync.RWMutex
	storage map[string]user.User
	ids     []string
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		storage: make(map[string]user.User),
		ids:     []string{},
	}
}

func (s *UserStorage) Create(ctx context.Context, u *user.User) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := uuid.NewString()
	stored := *u
	stored.ID = id
	s.storage[id] = stored
	s.ids = append(s.ids, id)
	return id, nil
}

func (s *UserStorage) GetByID(ctx context.Context, id string) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &stored, nil
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, id := range s.ids {
		stored := s.storage[id]
		if stored.Email == email {
			return &stored, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStorage) Update(ctx context.Context, u *user.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[u.ID]; !ok {
		return repository.ErrNotFound
	}
	s.storage[u.ID] = *u
	return nil
}

func (s *UserStorage) Delete(ctx context.Context, id string) error {
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

func (s *UserStorage) GetAll(ctx context.Context) ([]*user.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*user.User, 0, len(s.ids))
	for _, id := range s.ids {
		stored := s.storage[id]
		res = append(res, &stored)
	}
	return res, nil
}
