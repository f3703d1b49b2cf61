package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasko/internal/models/note"
	"tasko/internal/repository"
)

type NoteService struct {
	repo NoteRepository
}

func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// NoteInput es la entrada cruda de una nota. Sin más validación que
// los campos obligatorios: las notas son texto libre.
type NoteInput struct {
	UserID  string   `json:"user_id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *NoteService) CreateNote(ctx context.Context, in NoteInput) (*note.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewValidationError("title", "es obligatorio")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, NewValidationError("user_id", "es obligatorio")
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	n := &note.Note{
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		Tags:      tags,
		CreatedAt: time.Now(),
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("creación de nota: %w", err)
	}
	n.ID = id
	return n, nil
}

func (s *NoteService) GetNoteByID(ctx context.Context, id string) (*note.Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("nota", id)
		}
		return nil, fmt.Errorf("lectura de nota: %w", err)
	}
	return n, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, id string, in NoteInput) (*note.Note, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("nota", id)
		}
		return nil, fmt.Errorf("lectura de nota: %w", err)
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, NewValidationError("title", "es obligatorio")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, NewValidationError("user_id", "es obligatorio")
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	n := &note.Note{
		ID:        id,
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		Tags:      tags,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: &now,
	}

	if err := s.repo.Update(ctx, n); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("nota", id)
		}
		return nil, fmt.Errorf("actualización de nota: %w", err)
	}
	return n, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("nota", id)
		}
		return fmt.Errorf("eliminación de nota: %w", err)
	}
	return nil
}

func (s *NoteService) ListNotes(ctx context.Context) ([]*note.Note, error) {
	notes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listado de notas: %w", err)
	}
	return notes, nil
}

func (s *NoteService) ListUserNotes(ctx context.Context, userID string) ([]*note.Note, error) {
	notes, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listado de notas del usuario: %w", err)
	}
	return notes, nil
}
