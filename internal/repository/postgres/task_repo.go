package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tasko/internal/models/task"
	"tasko/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TaskRepo struct {
	storage *Storage
}

func NewTaskRepo(s *Storage) *TaskRepo {
	return &TaskRepo{storage: s}
}

const taskColumns = `id, title, description, due_date, completed, user_id, status, priority, tags, steps, justification`

func (r *TaskRepo) Create(ctx context.Context, t *task.Task) (string, error) {
	id := uuid.NewString()

	steps, err := json.Marshal(t.Steps)
	if err != nil {
		return "", fmt.Errorf("serialización de pasos: %w", err)
	}

	query := `INSERT INTO tasks (id, title, description, due_date, completed, user_id, status, priority, tags, steps, justification)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11)`

	_, err = r.storage.pool.Exec(ctx, query,
		id, t.Title, t.Description, t.DueDate, t.Completed, t.UserID,
		string(t.Status), string(t.Priority), t.Tags, string(steps), t.Justification)
	if err != nil {
		return "", fmt.Errorf("inserción de tarea: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *TaskRepo) Update(ctx context.Context, t *task.Task) error {
	steps, err := json.Marshal(t.Steps)
	if err != nil {
		return fmt.Errorf("serialización de pasos: %w", err)
	}

	query := `UPDATE tasks
			SET title = $2,
				description = $3,
				due_date = $4,
				completed = $5,
				user_id = $6,
				status = $7,
				priority = $8,
				tags = $9,
				steps = $10::jsonb,
				justification = $11
			WHERE id = $1`

	tag, err := r.storage.pool.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.DueDate, t.Completed, t.UserID,
		string(t.Status), string(t.Priority), t.Tags, string(steps), t.Justification)
	if err != nil {
		return fmt.Errorf("actualización de tarea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminación de tarea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) GetAll(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq`
	return r.queryTasks(ctx, query)
}

func (r *TaskRepo) GetByStatus(ctx context.Context, status task.Status) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE status = $1 ORDER BY seq`
	return r.queryTasks(ctx, query, string(status))
}

func (r *TaskRepo) GetByUser(ctx context.Context, userID, tag string, status task.Status) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{userID}

	if tag != "" {
		args = append(args, tag)
		query += fmt.Sprintf(` AND $%d = ANY(tags)`, len(args))
	}
	if status != "" {
		args = append(args, string(status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY seq`

	return r.queryTasks(ctx, query, args...)
}

func (r *TaskRepo) GetDueBefore(ctx context.Context, deadline time.Time, limit int) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
			WHERE NOT completed
			AND status <> $1
			AND to_date(due_date, 'DD-MM-YYYY') < $2
			ORDER BY seq
			LIMIT $3`
	return r.queryTasks(ctx, query, string(task.StatusCompleted), deadline, limit)
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("consulta de tareas: %w", err)
	}
	defer rows.Close()

	res := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lectura de tareas: %w", err)
	}
	return res, nil
}

// scanTask lee una fila y normaliza estado y prioridad: filas escritas
// por revisiones viejas pueden traer etiquetas fuera de la enumeración
// actual ("Pendientes") y deben seguir siendo legibles.
func scanTask(row pgx.Row) (*task.Task, error) {
	var t task.Task
	var status, priority string
	var steps []byte

	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Completed,
		&t.UserID, &status, &priority, &t.Tags, &steps, &t.Justification)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("lectura de tarea: %w", err)
	}

	t.Status = task.NormalizeStatus(status)
	t.Priority = task.NormalizePriority(priority)

	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &t.Steps); err != nil {
			return nil, fmt.Errorf("deserialización de pasos: %w", err)
		}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Steps == nil {
		t.Steps = []task.Step{}
	}
	return &t, nil
}
