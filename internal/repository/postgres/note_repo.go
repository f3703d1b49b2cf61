package postgres

import (
	"context"
	"errors"
	"fmt"

	"tasko/internal/models/note"
	"tasko/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NoteRepo struct {
	storage *Storage
}

func NewNoteRepo(s *Storage) *NoteRepo {
	return &NoteRepo{storage: s}
}

const noteColumns = `id, user_id, title, content, tags, created_at, updated_at`

func (r *NoteRepo) Create(ctx context.Context, n *note.Note) (string, error) {
	id := uuid.NewString()

	query := `INSERT INTO notes (id, user_id, title, content, tags, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.storage.pool.Exec(ctx, query,
		id, n.UserID, n.Title, n.Content, n.Tags, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("inserción de nota: %w", err)
	}
	return id, nil
}

func (r *NoteRepo) GetByID(ctx context.Context, id string) (*note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	return scanNote(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *NoteRepo) Update(ctx context.Context, n *note.Note) error {
	query := `UPDATE notes
			SET user_id = $2, title = $3, content = $4, tags = $5, updated_at = $6
			WHERE id = $1`

	tag, err := r.storage.pool.Exec(ctx, query,
		n.ID, n.UserID, n.Title, n.Content, n.Tags, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualización de nota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminación de nota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepo) GetAll(ctx context.Context) ([]*note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY seq`
	return r.queryNotes(ctx, query)
}

func (r *NoteRepo) GetByUser(ctx context.Context, userID string) ([]*note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY seq`
	return r.queryNotes(ctx, query, userID)
}

func (r *NoteRepo) queryNotes(ctx context.Context, query string, args ...any) ([]*note.Note, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consulta de notas: %w", err)
	}
	defer rows.Close()

	res := []*note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lectura de notas: %w", err)
	}
	return res, nil
}

func scanNote(row pgx.Row) (*note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("lectura de nota: %w", err)
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n, nil
}
