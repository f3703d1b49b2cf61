package focustime

import "time"

// FocusTime es un intervalo de trabajo concentrado registrado sobre
// una tarea. UserID es una copia desnormalizada del dueño de la tarea;
// registros viejos pueden no traerlo y se rellena al leer.
type FocusTime struct {
	ID        string     `json:"id" db:"id"`
	TaskID    string     `json:"task_id" db:"task_id"`
	UserID    string     `json:"user_id,omitempty" db:"user_id"`
	Minutes   int        `json:"minutes" db:"minutes"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
