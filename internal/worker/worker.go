package worker

import (
	"context"
	"log/slog"
	"time"
)

// PipelineRunner определяет интерфейс для однократного прогона конвейера.
// Используется для внедрения зависимости в воркер.
type PipelineRunner interface {
	RunOnce(ctx context.Context) error
}

// Worker реализует фонового воркера для периодического прогона конвейера.
// Каждый прогон остается строго последовательным, воркер лишь
// повторяет его по расписанию.
type Worker struct {
	runner   PipelineRunner
	interval time.Duration
	log      *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// New создает нового воркера с указанным интервалом прогона.
func New(runner PipelineRunner, interval time.Duration, log *slog.Logger) *Worker {
	return &Worker{
		runner:   runner,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start запускает воркер в отдельной горутине.
func (w *Worker) Start() {
	w.ctx, w.cancel = context.WithCancel(context.Background())
	go w.run()
}

// Stop останавливает воркер и дожидается завершения текущего прогона.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}

// run выполняет основной цикл работы воркера.
func (w *Worker) run() {
	defer close(w.done)
	w.log.Info("Pipeline worker started",
		slog.String("component", "worker"),
		slog.String("interval", w.interval.String()),
	)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.runOnce()
		case <-w.ctx.Done():
			w.log.Info("Worker stopping", slog.String("component", "worker"))
			return
		}
	}
}

// runOnce прогоняет конвейер один раз, фиксируя длительность и ошибки.
func (w *Worker) runOnce() {
	start := time.Now()
	w.log.Info("Pipeline cycle started", slog.String("component", "worker"))
	if err := w.runner.RunOnce(w.ctx); err != nil {
		w.log.Error("Pipeline cycle failed",
			slog.String("component", "worker"),
			slog.Any("error", err),
		)
		return
	}
	w.log.Info("Pipeline cycle completed",
		slog.String("component", "worker"),
		slog.Duration("duration", time.Since(start)),
	)
}

// GetInterval возвращает интервал прогона конвейера.
func (w *Worker) GetInterval() time.Duration { return w.interval }
