package inmemory

import (
	"context"
	"slices"
	"sync"

	"tasko/internal/models/note"
	"tasko/internal/repository"

	"github.com/google/uuid"
)

type NoteStorage struct {
	mtx     sync.RWMutex
	storage map[string]note.Note
	ids     []string
}

func NewNoteStorage() *NoteStorage {
	return &NoteStorage{
		storage: make(map[string]note.Note),
		ids:     []string{},
	}
}

func (s *NoteStorage) Create(ctx context.Context, n *note.Note) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := uuid.NewString()
	stored := *n
	stored.ID = id
	s.storage[id] = stored
	s.ids = append(s.ids, id)
	return id, nil
}

func (s *NoteStorage) GetByID(ctx context.Context, id string) (*note.Note, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneNote(stored), nil
}

func (s *NoteStorage) Update(ctx context.Context, n *note.Note) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[n.ID]; !ok {
		return repository.ErrNotFound
	}
	s.storage[n.ID] = *n
	return nil
}

func (s *NoteStorage) Delete(ctx context.Context, id string) error {
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

func (s *NoteStorage) GetAll(ctx context.Context) ([]*note.Note, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*note.Note, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, cloneNote(s.storage[id]))
	}
	return res, nil
}

func (s *NoteStorage) GetByUser(ctx context.Context, userID string) ([]*note.Note, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*note.Note{}
	for _, id := range s.ids {
		stored := s.storage[id]
		if stored.UserID != userID {
			continue
		}
		res = append(res, cloneNote(stored))
	}
	return res, nil
}

func cloneNote(n note.Note) *note.Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	return &c
}
