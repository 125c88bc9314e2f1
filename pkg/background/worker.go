package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"zapshift/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между выполнениями.
	TTL() time.Duration
	Do(context.Context) error
	// Info читаемое имя для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи (каждая выполняется один раз синхронно, ошибка или паника
// прерывает старт) и запускает их периодическое выполнение до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}

	if err := w.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.runBackgroundTask(ctx, task)
		}()
	}

	return w, nil
}

// Wait блокируется до остановки всех задач (после отмены контекста из New).
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					w.log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
					)
				}
			}()
			w.log.Info("initializing task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(groupCtx)
		})
	}
	return group.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
