package handlers

import (
	"net/http"

	"tasko/internal/handlers/dto"
	"tasko/internal/service"
)

// DebugHandler expone rutas de inspección del almacén de documentos:
// el inventario de colecciones con su tamaño y un documento de muestra
// de cada una. Pensado para diagnóstico, no para clientes.
type DebugHandler struct {
	tasks service.TaskRepository
	users service.UserRepository
	notes service.NoteRepository
}

func NewDebugHandler(tasks service.TaskRepository, users service.UserRepository, notes service.NoteRepository) *DebugHandler {
	return &DebugHandler{tasks: tasks, users: users, notes: notes}
}

type collectionInfo struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
}

func (h *DebugHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.tasks.GetAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	users, err := h.users.GetAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	notes, err := h.notes.GetAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, map[string]any{
		"collections": []collectionInfo{
			{Name: "users", Documents: len(users)},
			{Name: "tasks", Documents: len(tasks)},
			{Name: "notes", Documents: len(notes)},
		},
	})
}

// GetSample devuelve el primer documento de usuarios y tareas, o null
// si la colección está vacía. Los usuarios pasan por el DTO para no
// exponer el hash de contraseña.
func (h *DebugHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sample := map[string]any{
		"users": nil,
		"tasks": nil,
	}

	users, err := h.users.GetAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(users) > 0 {
		sample["users"] = dto.FromUser(users[0])
	}

	tasks, err := h.tasks.GetAll(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(tasks) > 0 {
		sample["tasks"] = dto.FromTask(tasks[0])
	}

	responseWithJSON(w, http.StatusOK, sample)
}
