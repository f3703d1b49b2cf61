package dto

import (
	"tasko/internal/models/task"
	"tasko/internal/models/user"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func FromUserList(users []*user.User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i, u := range users {
		result[i] = FromUser(u)
	}
	return result
}

type TaskResponse struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	DueDate       string      `json:"due_date"`
	Completed     bool        `json:"completed"`
	UserID        string      `json:"user_id"`
	Status        string      `json:"status"`
	Priority      string      `json:"priority"`
	Tags          []string    `json:"tags"`
	Steps         []task.Step `json:"steps"`
	Justification string      `json:"justification,omitempty"`
}

func FromTask(t *task.Task) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	steps := t.Steps
	if steps == nil {
		steps = []task.Step{}
	}
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Completed:     t.Completed,
		UserID:        t.UserID,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		Tags:          tags,
		Steps:         steps,
		Justification: t.Justification,
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}

type CreateFocusTimeRequest struct {
	TaskID  string `json:"task_id"`
	Minutes int    `json:"minutes"`
}

type UpdateFocusTimeRequest struct {
	Minutes int `json:"minutes"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
