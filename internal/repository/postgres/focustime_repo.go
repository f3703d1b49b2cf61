package postgres

import (
	"context"
	"errors"
	"fmt"

	"tasko/internal/models/focustime"
	"tasko/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FocusTimeRepo struct {
	storage *Storage
}

func NewFocusTimeRepo(s *Storage) *FocusTimeRepo {
	return &FocusTimeRepo{storage: s}
}

const focusTimeColumns = `id, task_id, COALESCE(user_id, ''), minutes, created_at, updated_at`

func (r *FocusTimeRepo) Create(ctx context.Context, ft *focustime.FocusTime) (string, error) {
	id := uuid.NewString()

	query := `INSERT INTO focus_times (id, task_id, user_id, minutes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.storage.pool.Exec(ctx, query,
		id, ft.TaskID, ft.UserID, ft.Minutes, ft.CreatedAt, ft.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("inserción de registro de concentración: %w", err)
	}
	return id, nil
}

func (r *FocusTimeRepo) GetByID(ctx context.Context, id string) (*focustime.FocusTime, error) {
	query := `SELECT ` + focusTimeColumns + ` FROM focus_times WHERE id = $1`
	return scanFocusTime(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *FocusTimeRepo) Update(ctx context.Context, ft *focustime.FocusTime) error {
	query := `UPDATE focus_times
			SET task_id = $2, user_id = $3, minutes = $4, updated_at = $5
			WHERE id = $1`

	tag, err := r.storage.pool.Exec(ctx, query,
		ft.ID, ft.TaskID, ft.UserID, ft.Minutes, ft.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualización de registro de concentración: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FocusTimeRepo) GetByTask(ctx context.Context, taskID string) ([]*focustime.FocusTime, error) {
	query := `SELECT ` + focusTimeColumns + ` FROM focus_times WHERE task_id = $1 ORDER BY created_at ASC`

	rows, err := r.storage.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("consulta de registros de concentración: %w", err)
	}
	defer rows.Close()

	res := []*focustime.FocusTime{}
	for rows.Next() {
		ft, err := scanFocusTime(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lectura de registros de concentración: %w", err)
	}
	return res, nil
}

func scanFocusTime(row pgx.Row) (*focustime.FocusTime, error) {
	var ft focustime.FocusTime
	err := row.Scan(&ft.ID, &ft.TaskID, &ft.UserID, &ft.Minutes, &ft.CreatedAt, &ft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("lectura de registro de concentración: %w", err)
	}
	return &ft, nil
}
