package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mebelart/catalogbot/internal/domain"
	"golang.org/x/sync/semaphore"
)

// GeneratorService drives one generation request through the remote
// task lifecycle: submit, then poll at a fixed interval until a
// terminal status or the budget runs out. It holds no state between
// calls; retrying a whole generation is the caller's decision.
type GeneratorService struct {
	api      *NanoBananaService
	interval time.Duration
	budget   time.Duration
	sem      *semaphore.Weighted
}

func NewGeneratorService(api *NanoBananaService, interval, budget time.Duration, maxConcurrent int64) *GeneratorService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &GeneratorService{
		api:      api,
		interval: interval,
		budget:   budget,
		sem:      semaphore.NewWeighted(maxConcurrent),
	}
}

// Generate submits req and waits for the result URL. Every failure path
// returns a *domain.GenerationError so the caller can branch on kind.
func (s *GeneratorService) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", &domain.GenerationError{Kind: domain.FailureSubmission, Detail: "отменено", Err: err}
	}
	defer s.sem.Release(1)

	reqID := uuid.NewString()
	log := slog.With("request_id", reqID)

	task, err := s.api.CreateTask(ctx, reqID, req)
	if err != nil {
		log.Error("submit generation", "error", err)
		return "", &domain.GenerationError{Kind: domain.FailureSubmission, Detail: err.Error(), Err: err}
	}

	switch task.Status {
	case domain.TaskCompleted:
		// Synchronous mode, no polling needed.
		return s.completed(log, task)
	case domain.TaskFailed:
		log.Warn("generation rejected on submit", "detail", task.Detail)
		return "", &domain.GenerationError{Kind: domain.FailureSubmission, Detail: task.Detail}
	}

	taskID := task.ID
	log.Info("generation task submitted", "task_id", taskID)

	attempts := int((s.budget + s.interval - 1) / s.interval)
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return "", &domain.GenerationError{Kind: domain.FailureSubmission, Detail: "отменено", Err: ctx.Err()}
		case <-time.After(s.interval):
		}

		polled, err := s.api.QueryTask(ctx, reqID, taskID)
		if err != nil {
			// Transient: keep polling while the budget allows.
			log.Warn("query task", "error", err, "attempt", i+1)
			continue
		}

		switch polled.Status {
		case domain.TaskCompleted:
			return s.completed(log, polled)
		case domain.TaskFailed:
			log.Warn("generation task failed", "task_id", taskID, "detail", polled.Detail)
			return "", &domain.GenerationError{Kind: domain.FailureRemoteTask, Detail: polled.Detail}
		}
	}

	log.Warn("generation task timed out", "task_id", taskID, "attempts", attempts)
	return "", &domain.GenerationError{Kind: domain.FailureTimeout, Detail: "генерация не завершилась вовремя"}
}

func (s *GeneratorService) completed(log *slog.Logger, task *domain.GenerationTask) (string, error) {
	if task.ResultURL == "" {
		log.Error("completed task without result URL", "task_id", task.ID)
		return "", &domain.GenerationError{Kind: domain.FailureProtocol, Detail: "сервис не вернул ссылку на результат"}
	}
	log.Info("generation completed", "task_id", task.ID)
	return task.ResultURL, nil
}
