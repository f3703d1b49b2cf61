package handlers

import (
	"context"

	"tasko/internal/models/focustime"
	"tasko/internal/models/note"
	"tasko/internal/models/task"
	"tasko/internal/models/user"
	"tasko/internal/service"
)

type TaskService interface {
	CreateTask(ctx context.Context, in task.Input) (*task.Task, error)
	GetTaskByID(ctx context.Context, id string) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, in task.Input) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, status string) ([]*task.Task, error)
	ListUserTasks(ctx context.Context, userID, tag, status string) ([]*task.Task, error)
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	UpdateUser(ctx context.Context, id, email, password string) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*user.User, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, in service.NoteInput) (*note.Note, error)
	GetNoteByID(ctx context.Context, id string) (*note.Note, error)
	UpdateNote(ctx context.Context, id string, in service.NoteInput) (*note.Note, error)
	DeleteNote(ctx context.Context, id string) error
	ListNotes(ctx context.Context) ([]*note.Note, error)
	ListUserNotes(ctx context.Context, userID string) ([]*note.Note, error)
}

type FocusTimeService interface {
	Create(ctx context.Context, taskID string, minutes int) (*focustime.FocusTime, error)
	Update(ctx context.Context, id string, minutes int) (*focustime.FocusTime, error)
	ListByTask(ctx context.Context, taskID string) ([]*focustime.FocusTime, error)
	SummarizeByUser(ctx context.Context, userID string) ([]service.TaskSummary, error)
}
