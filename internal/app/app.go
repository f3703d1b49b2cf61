package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tasko/internal/auth"
	"tasko/internal/config"
	"tasko/internal/handlers"
	"tasko/internal/logger"
	"tasko/internal/middleware"
	"tasko/internal/repository/inmemory"
	"tasko/internal/repository/postgres"
	"tasko/internal/service"
	"tasko/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type App struct {
	config    *config.Config
	server    *http.Server
	worker    *worker.DueWorker
	shutdowns []func() // funciones para el apagado ordenado
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init construye el grafo completo: repositorios según configuración,
// servicios con sus dependencias inyectadas, handlers y router.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("inicialización del logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Sync()
	})

	var (
		taskRepo  service.TaskRepository
		userRepo  service.UserRepository
		noteRepo  service.NoteRepository
		focusRepo service.FocusTimeRepository
		checker   handlers.HealthChecker
	)

	switch a.config.Repository.Type {
	case "postgres":
		if err := postgres.Migrate(a.config.Database.URL); err != nil {
			return fmt.Errorf("migraciones: %w", err)
		}
		storage, err := postgres.New(ctx, a.config.Database.URL)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		a.shutdowns = append(a.shutdowns, storage.Close)

		taskRepo = postgres.NewTaskRepo(storage)
		userRepo = postgres.NewUserRepo(storage)
		noteRepo = postgres.NewNoteRepo(storage)
		focusRepo = postgres.NewFocusTimeRepo(storage)
		checker = storage
	case "inmemory":
		taskStorage := inmemory.NewTaskStorage()
		taskRepo = taskStorage
		userRepo = inmemory.NewUserStorage()
		noteRepo = inmemory.NewNoteStorage()
		focusRepo = inmemory.NewFocusTimeStorage()
		checker = taskStorage
	default:
		return fmt.Errorf("tipo de repositorio desconocido: %q", a.config.Repository.Type)
	}

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewJWTManager(a.config.Auth.JWTSecret, a.config.Auth.TokenTTL)

	taskService := service.NewTaskService(taskRepo)
	userService := service.NewUserService(userRepo, hasher, tokens)
	noteService := service.NewNoteService(noteRepo)
	focusService := service.NewFocusTimeService(focusRepo, taskRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	noteHandler := handlers.NewNoteHandler(noteService)
	focusHandler := handlers.NewFocusTimeHandler(focusService)
	debugHandler := handlers.NewDebugHandler(taskRepo, userRepo, noteRepo)

	// exige token Bearer en un subárbol cuando la configuración lo
	// pide; con require_auth apagado las rutas quedan abiertas, como
	// las consumen los clientes existentes
	requireToken := func(r chi.Router) {
		if a.config.Auth.RequireAuth {
			r.Use(middleware.Auth(tokens))
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.RateLimit(100))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))

	router.Get("/", handlers.Root)

	router.Route("/users", func(r chi.Router) {
		// el alta queda abierta; el resto del subárbol puede exigir token
		r.Post("/", userHandler.PostUser)

		r.Group(func(r chi.Router) {
			requireToken(r)
			r.Get("/", userHandler.GetUsers)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", userHandler.GetUserByID)
				r.Put("/", userHandler.UpdateUserByID)
				r.Delete("/", userHandler.DeleteUserByID)
			})
		})
	})
	router.Post("/login", userHandler.Login)

	router.Route("/tasks", func(r chi.Router) {
		requireToken(r)
		r.Get("/", taskHandler.GetTasks) // ?status=
		r.Post("/", taskHandler.PostTask)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)
			r.Put("/", taskHandler.UpdateTaskByID)
			r.Delete("/", taskHandler.DeleteTaskByID)
		})

		r.Get("/user/{userID}", taskHandler.GetUserTasks) // ?tag= &status=
	})

	router.Route("/notes", func(r chi.Router) {
		requireToken(r)
		r.Get("/", noteHandler.GetNotes)
		r.Post("/", noteHandler.PostNote)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", noteHandler.GetNoteByID)
			r.Put("/", noteHandler.UpdateNoteByID)
			r.Delete("/", noteHandler.DeleteNoteByID)
		})

		r.Get("/user/{userID}", noteHandler.GetUserNotes)
	})

	router.Route("/focus-times", func(r chi.Router) {
		requireToken(r)
		r.Post("/", focusHandler.PostFocusTime)
		r.Put("/{id}", focusHandler.UpdateFocusTimeByID)
		r.Get("/task/{taskID}", focusHandler.GetTaskFocusTimes)
		r.Get("/summary/{userID}", focusHandler.GetUserSummary)
	})

	router.Route("/debug", func(r chi.Router) {
		requireToken(r)
		r.Get("/collections", debugHandler.GetCollections)
		r.Get("/sample", debugHandler.GetSample)
	})

	router.Get("/health", handlers.Health(checker))

	a.worker = worker.NewDueWorker(taskRepo, a.config.Worker.Interval, a.config.Worker.BatchSize)
	a.server = &http.Server{
		Addr:    a.config.ServerAddr(),
		Handler: router,
	}
	return nil
}

// Run arranca el worker y el servidor HTTP y bloquea hasta que el
// contexto se cancele; después apaga todo en orden inverso.
func (a *App) Run(ctx context.Context) error {
	workerCtx, stopWorker := context.WithCancel(ctx)
	go a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Servidor escuchando en " + a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		stopWorker()
		a.runShutdowns()
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Señal de apagado recibida")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error durante el apagado del servidor", err)
	}

	a.runShutdowns()
	return nil
}

func (a *App) runShutdowns() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
