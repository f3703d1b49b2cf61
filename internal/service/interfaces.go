package service

import (
	"context"
	"time"

	"tasko/internal/models/focustime"
	"tasko/internal/models/note"
	"tasko/internal/models/task"
	"tasko/internal/models/user"
)

// Los repositorios se declaran del lado del consumidor. El almacén de
// documentos es un colaborador externo: aquí solo se especifica el
// contrato (alta con id generado, lectura, reemplazo completo, borrado
// y consultas por igualdad / pertenencia).

type TaskRepository interface {
	Create(ctx context.Context, t *task.Task) (string, error)
	GetByID(ctx context.Context, id string) (*task.Task, error)
	Update(ctx context.Context, t *task.Task) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*task.Task, error)
	GetByStatus(ctx context.Context, status task.Status) ([]*task.Task, error)
	GetByUser(ctx context.Context, userID, tag string, status task.Status) ([]*task.Task, error)
	GetDueBefore(ctx context.Context, deadline time.Time, limit int) ([]*task.Task, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (string, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*user.User, error)
}

type NoteRepository interface {
	Create(ctx context.Context, n *note.Note) (string, error)
	GetByID(ctx context.Context, id string) (*note.Note, error)
	Update(ctx context.Context, n *note.Note) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]*note.Note, error)
	GetByUser(ctx context.Context, userID string) ([]*note.Note, error)
}

type FocusTimeRepository interface {
	Create(ctx context.Context, ft *focustime.FocusTime) (string, error)
	GetByID(ctx context.Context, id string) (*focustime.FocusTime, error)
	Update(ctx context.Context, ft *focustime.FocusTime) error
	GetByTask(ctx context.Context, taskID string) ([]*focustime.FocusTime, error)
}
