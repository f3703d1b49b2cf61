package task

type Status string
type Priority string

const StatusPending Status = "Pendiente"
const StatusInProgress Status = "En Progreso"
const StatusCompleted Status = "Completada"

const PriorityLow Priority = "Baja"
const PriorityMedium Priority = "Media"
const PriorityHigh Priority = "Alta"

const MaxTitleLen = 100
const MaxStepLen = 200
const MaxJustificationLen = 500

type Step struct {
	Description string `json:"description" db:"description"`
	Completed   bool   `json:"completed" db:"completed"`
}

type Task struct {
	ID            string   `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Description   string   `json:"description" db:"description"`
	DueDate       string   `json:"due_date" db:"due_date"`
	Completed     bool     `json:"completed" db:"completed"`
	UserID        string   `json:"user_id" db:"user_id"`
	Status        Status   `json:"status" db:"status"`
	Priority      Priority `json:"priority" db:"priority"`
	Tags          []string `json:"tags" db:"tags"`
	Steps         []Step   `json:"steps" db:"steps"`
	Justification string   `json:"justification,omitempty" db:"justification"`
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
