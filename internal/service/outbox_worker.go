package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iyhunko/treko-inventory/internal/metrics"
	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
)

const outboxBatchSize = 100

// EventPublisher delivers an encoded outbox event.
type EventPublisher interface {
	PublishRaw(ctx context.Context, body string) error
}

// OutboxWorker polls the events table and publishes pending events.
type OutboxWorker struct {
	eventRepo repository.EventRepository
	publisher EventPublisher
	interval  time.Duration
	stopChan  chan struct{}
	stopOnce  sync.Once
}

// NewOutboxWorker creates a new OutboxWorker
func NewOutboxWorker(eventRepo repository.EventRepository, publisher EventPublisher, interval time.Duration) *OutboxWorker {
	return &OutboxWorker{
		eventRepo: eventRepo,
		publisher: publisher,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start processes events every interval until ctx is done or Stop is called.
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context")
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped")
			return
		case <-ticker.C:
			w.ProcessEvents(ctx)
		}
	}
}

// Stop stops the outbox worker. It is safe to call more than once.
func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
}

// ProcessEvents publishes one batch of pending events and records the outcome of each.
func (w *OutboxWorker) ProcessEvents(ctx context.Context) {
	events, err := w.eventRepo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		slog.Error("Failed to retrieve pending events", slog.Any("err", err))
		return
	}

	if len(events) == 0 {
		return
	}

	slog.Info("Processing pending events", slog.Int("count", len(events)))

	for _, event := range events {
		status := model.EventStatusProcessed
		if err := w.publisher.PublishRaw(ctx, string(event.EventData)); err != nil {
			slog.Error("Failed to process event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
				slog.Any("err", err))
			status = model.EventStatusFailed
		}

		if err := w.eventRepo.UpdateStatus(ctx, event.ID, status); err != nil {
			slog.Error("Failed to update event status",
				slog.String("event_id", event.ID.String()),
				slog.String("status", string(status)),
				slog.Any("err", err))
			continue
		}
		metrics.OutboxEventsPublished.WithLabelValues(string(status)).Inc()
	}
}
