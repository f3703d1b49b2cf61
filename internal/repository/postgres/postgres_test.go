package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tasko/internal/models/focustime"
	"tasko/internal/models/note"
	"tasko/internal/models/task"
	"tasko/internal/models/user"
	"tasko/internal/repository"
	"tasko/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresTestSuite levanta un PostgreSQL real en contenedor y ejercita
// los repositorios contra él, migraciones incluidas.
type PostgresTestSuite struct {
	suite.Suite
	container  testcontainers.Container
	storage    *postgres.Storage
	connString string
	ctx        context.Context

	tasks *postgres.TaskRepo
	users *postgres.UserRepo
	notes *postgres.NoteRepo
	focus *postgres.FocusTimeRepo
}

func (s *PostgresTestSuite) SetupSuite() {
	s.ctx = context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(s.ctx, "5432")
	require.NoError(s.T(), err)

	s.connString = fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	require.NoError(s.T(), postgres.Migrate(s.connString))

	s.storage, err = postgres.New(s.ctx, s.connString)
	require.NoError(s.T(), err)

	s.tasks = postgres.NewTaskRepo(s.storage)
	s.users = postgres.NewUserRepo(s.storage)
	s.notes = postgres.NewNoteRepo(s.storage)
	s.focus = postgres.NewFocusTimeRepo(s.storage)
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.container != nil {
		s.container.Terminate(s.ctx)
	}
}

func (s *PostgresTestSuite) SetupTest() {
	s.execSQL(`DELETE FROM focus_times`)
	s.execSQL(`DELETE FROM notes`)
	s.execSQL(`DELETE FROM tasks`)
	s.execSQL(`DELETE FROM users`)
}

// execSQL abre una conexión directa para preparar o inspeccionar datos
// por fuera de los repositorios.
func (s *PostgresTestSuite) execSQL(query string, args ...any) {
	conn, err := pgx.Connect(s.ctx, s.connString)
	require.NoError(s.T(), err)
	defer conn.Close(s.ctx)

	_, err = conn.Exec(s.ctx, query, args...)
	require.NoError(s.T(), err)
}

func TestPostgresTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("se omiten las pruebas de integración en modo corto")
	}
	suite.Run(t, new(PostgresTestSuite))
}

func sampleTask(title, userID string) *task.Task {
	return &task.Task{
		Title:    title,
		DueDate:  "20-11-2025",
		UserID:   userID,
		Status:   task.StatusPending,
		Priority: task.PriorityMedium,
		Tags:     []string{},
		Steps:    []task.Step{},
	}
}

func (s *PostgresTestSuite) TestTaskRepo_CRUD() {
	ctx := context.Background()

	t := sampleTask("Comprar pan", "user-1")
	t.Tags = []string{"casa", "urgente"}
	t.Steps = []task.Step{{Description: "Ir a la panadería"}, {Description: "Pagar", Completed: true}}

	id, err := s.tasks.Create(ctx, t)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), id)

	got, err := s.tasks.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Comprar pan", got.Title)
	assert.Equal(s.T(), []string{"casa", "urgente"}, got.Tags)
	require.Len(s.T(), got.Steps, 2)
	assert.Equal(s.T(), "Ir a la panadería", got.Steps[0].Description)
	assert.True(s.T(), got.Steps[1].Completed)

	got.Title = "Comprar pan integral"
	got.Status = task.StatusCompleted
	got.Completed = true
	require.NoError(s.T(), s.tasks.Update(ctx, got))

	updated, err := s.tasks.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Comprar pan integral", updated.Title)
	assert.Equal(s.T(), task.StatusCompleted, updated.Status)
	assert.True(s.T(), updated.Completed)

	require.NoError(s.T(), s.tasks.Delete(ctx, id))

	_, err = s.tasks.GetByID(ctx, id)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestTaskRepo_NotFound() {
	ctx := context.Background()
	missing := uuid.NewString()

	_, err := s.tasks.GetByID(ctx, missing)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)

	ghost := sampleTask("Fantasma", "user-1")
	ghost.ID = missing
	assert.ErrorIs(s.T(), s.tasks.Update(ctx, ghost), repository.ErrNotFound)
	assert.ErrorIs(s.T(), s.tasks.Delete(ctx, missing), repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestTaskRepo_GetAll_SeqOrder() {
	ctx := context.Background()

	titles := []string{"Primera", "Segunda", "Tercera"}
	for _, title := range titles {
		_, err := s.tasks.Create(ctx, sampleTask(title, "user-1"))
		require.NoError(s.T(), err)
	}

	all, err := s.tasks.GetAll(ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	for i, title := range titles {
		assert.Equal(s.T(), title, all[i].Title)
	}
}

func (s *PostgresTestSuite) TestTaskRepo_GetByUser_Filters() {
	ctx := context.Background()

	withTag := sampleTask("Con etiqueta", "ana")
	withTag.Tags = []string{"casa"}
	_, err := s.tasks.Create(ctx, withTag)
	require.NoError(s.T(), err)

	completed := sampleTask("Completada", "ana")
	completed.Status = task.StatusCompleted
	_, err = s.tasks.Create(ctx, completed)
	require.NoError(s.T(), err)

	_, err = s.tasks.Create(ctx, sampleTask("De otro", "benito"))
	require.NoError(s.T(), err)

	s.T().Run("solo el dueño", func(t *testing.T) {
		res, err := s.tasks.GetByUser(ctx, "ana", "", "")
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	s.T().Run("pertenencia a la etiqueta", func(t *testing.T) {
		res, err := s.tasks.GetByUser(ctx, "ana", "casa", "")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Con etiqueta", res[0].Title)
	})

	s.T().Run("filtro por estado", func(t *testing.T) {
		res, err := s.tasks.GetByUser(ctx, "ana", "", task.StatusCompleted)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Completada", res[0].Title)
	})

	s.T().Run("etiqueta y estado combinados", func(t *testing.T) {
		res, err := s.tasks.GetByUser(ctx, "ana", "casa", task.StatusCompleted)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func (s *PostgresTestSuite) TestTaskRepo_GetByStatus() {
	ctx := context.Background()

	_, err := s.tasks.Create(ctx, sampleTask("Pendiente", "user-1"))
	require.NoError(s.T(), err)

	done := sampleTask("Hecha", "user-1")
	done.Status = task.StatusCompleted
	_, err = s.tasks.Create(ctx, done)
	require.NoError(s.T(), err)

	res, err := s.tasks.GetByStatus(ctx, task.StatusPending)
	require.NoError(s.T(), err)
	require.Len(s.T(), res, 1)
	assert.Equal(s.T(), "Pendiente", res[0].Title)
}

func (s *PostgresTestSuite) TestTaskRepo_GetDueBefore() {
	ctx := context.Background()

	overdue := sampleTask("Vencida", "user-1")
	overdue.DueDate = "01-01-2020"
	_, err := s.tasks.Create(ctx, overdue)
	require.NoError(s.T(), err)

	overdueDone := sampleTask("Vencida pero completada", "user-1")
	overdueDone.DueDate = "01-01-2020"
	overdueDone.Completed = true
	_, err = s.tasks.Create(ctx, overdueDone)
	require.NoError(s.T(), err)

	future := sampleTask("Futura", "user-1")
	future.DueDate = "31-12-2099"
	_, err = s.tasks.Create(ctx, future)
	require.NoError(s.T(), err)

	res, err := s.tasks.GetDueBefore(ctx, time.Now(), 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), res, 1)
	assert.Equal(s.T(), "Vencida", res[0].Title)
}

// Las filas escritas por revisiones viejas traen etiquetas fuera de la
// enumeración actual; el escáner debe normalizarlas al leer.
func (s *PostgresTestSuite) TestTaskRepo_LegacyLabelsNormalizedOnRead() {
	ctx := context.Background()
	id := uuid.NewString()

	s.execSQL(`INSERT INTO tasks (id, title, due_date, user_id, status, priority)
			VALUES ($1, 'Tarea vieja', '15-03-2023', 'user-1', 'Pendientes', 'alta')`, id)

	got, err := s.tasks.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), task.StatusPending, got.Status)
	assert.Equal(s.T(), task.PriorityHigh, got.Priority)
	// los valores por defecto de columna llegan como listas vacías, no nil
	assert.Equal(s.T(), []string{}, got.Tags)
	assert.Equal(s.T(), []task.Step{}, got.Steps)
}

func (s *PostgresTestSuite) TestUserRepo_CRUDAndEmailLookup() {
	ctx := context.Background()

	id, err := s.users.Create(ctx, &user.User{Email: "ana@example.com", Password: "hash"})
	require.NoError(s.T(), err)

	byEmail, err := s.users.GetByEmail(ctx, "ana@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), id, byEmail.ID)

	_, err = s.users.GetByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)

	require.NoError(s.T(), s.users.Update(ctx, &user.User{ID: id, Email: "ana2@example.com", Password: "hash2"}))

	got, err := s.users.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "ana2@example.com", got.Email)

	require.NoError(s.T(), s.users.Delete(ctx, id))
	_, err = s.users.GetByID(ctx, id)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestNoteRepo_CRUDAndUserFilter() {
	ctx := context.Background()

	id, err := s.notes.Create(ctx, &note.Note{
		UserID:    "ana",
		Title:     "Ideas",
		Content:   "Apuntes sueltos",
		Tags:      []string{"personal"},
		CreatedAt: time.Now(),
	})
	require.NoError(s.T(), err)

	_, err = s.notes.Create(ctx, &note.Note{UserID: "benito", Title: "De Benito", Tags: []string{}, CreatedAt: time.Now()})
	require.NoError(s.T(), err)

	got, err := s.notes.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Ideas", got.Title)
	assert.Equal(s.T(), []string{"personal"}, got.Tags)
	assert.Nil(s.T(), got.UpdatedAt)

	now := time.Now()
	got.Title = "Ideas revisadas"
	got.UpdatedAt = &now
	require.NoError(s.T(), s.notes.Update(ctx, got))

	mine, err := s.notes.GetByUser(ctx, "ana")
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 1)
	assert.Equal(s.T(), "Ideas revisadas", mine[0].Title)
	assert.NotNil(s.T(), mine[0].UpdatedAt)

	require.NoError(s.T(), s.notes.Delete(ctx, id))
	_, err = s.notes.GetByID(ctx, id)
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestFocusTimeRepo_CRUDAndOrdering() {
	ctx := context.Background()

	taskID, err := s.tasks.Create(ctx, sampleTask("Con concentración", "ana"))
	require.NoError(s.T(), err)

	base := time.Now().Truncate(time.Microsecond)
	var lastID string
	for i, minutes := range []int{10, 20, 30} {
		lastID, err = s.focus.Create(ctx, &focustime.FocusTime{
			TaskID:    taskID,
			UserID:    "ana",
			Minutes:   minutes,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(s.T(), err)
	}

	records, err := s.focus.GetByTask(ctx, taskID)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 3)
	assert.Equal(s.T(), 10, records[0].Minutes)
	assert.Equal(s.T(), 30, records[2].Minutes)

	got, err := s.focus.GetByID(ctx, lastID)
	require.NoError(s.T(), err)
	now := time.Now()
	got.Minutes = 45
	got.UpdatedAt = &now
	require.NoError(s.T(), s.focus.Update(ctx, got))

	updated, err := s.focus.GetByID(ctx, lastID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 45, updated.Minutes)
	assert.NotNil(s.T(), updated.UpdatedAt)

	assert.ErrorIs(s.T(), s.focus.Update(ctx, &focustime.FocusTime{ID: uuid.NewString()}), repository.ErrNotFound)
}

// Los registros de revisiones viejas tienen user_id NULL en la tabla;
// el repositorio los devuelve con cadena vacía, nunca con error.
func (s *PostgresTestSuite) TestFocusTimeRepo_LegacyNullUserID() {
	ctx := context.Background()

	taskID, err := s.tasks.Create(ctx, sampleTask("Tarea vieja", "ana"))
	require.NoError(s.T(), err)

	id := uuid.NewString()
	s.execSQL(`INSERT INTO focus_times (id, task_id, user_id, minutes, created_at)
			VALUES ($1, $2, NULL, 25, NOW())`, id, taskID)

	got, err := s.focus.GetByID(ctx, id)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), got.UserID)
	assert.Equal(s.T(), 25, got.Minutes)
}

func (s *PostgresTestSuite) TestStorage_HealthCheck() {
	require.NoError(s.T(), s.storage.HealthCheck(context.Background()))
}

func TestStorage_New_InvalidConnString(t *testing.T) {
	ctx := context.Background()

	_, err := postgres.New(ctx, "esto no es una url")
	assert.Error(t, err)
}
