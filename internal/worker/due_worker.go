package worker

import (
	"context"
	"time"

	"tasko/internal/logger"
	"tasko/internal/service"

	"go.uber.org/zap"
)

// DueWorker revisa periódicamente las tareas sin completar cuya fecha
// límite ya pasó y lo deja en el log. No muta nada: la enumeración de
// estados no tiene un valor "vencida", así que el vencimiento es un
// dato derivado, no persistido.
type DueWorker struct {
	repo      service.TaskRepository
	interval  time.Duration
	batchSize int
}

func NewDueWorker(repo service.TaskRepository, interval time.Duration, batchSize int) *DueWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &DueWorker{
		repo:      repo,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (w *DueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Revisión de vencimientos detenida")
			return
		}
	}
}

func (w *DueWorker) Check(ctx context.Context) {
	start := time.Now()

	tasks, err := w.repo.GetDueBefore(ctx, time.Now(), w.batchSize)
	if err != nil {
		logger.Warn("Worker: Error al obtener tareas vencidas", zap.Error(err))
		return
	}

	for _, t := range tasks {
		logger.Warn("Worker: Tarea vencida sin completar",
			zap.String("task_id", t.ID),
			zap.String("user_id", t.UserID),
			zap.String("due_date", t.DueDate))
	}

	logger.Info("Worker: Revisión de vencimientos completada",
		zap.Duration("ms", time.Since(start)),
		zap.Int("overdue", len(tasks)))
}
